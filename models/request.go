package models

// FeedbackRequest status workflow. A request starts pending and is settled
// exactly once to approved or declined.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusDeclined = "declined"
)

// AnonymousLabel replaces the requester name when a request is anonymous.
const AnonymousLabel = "Anonymous"

// FeedbackRequest is an employee-initiated ask for a manager to provide
// feedback. Anonymity hides the requester from the manager only.
type FeedbackRequest struct {
	Model

	RequesterID     uint   `gorm:"not null;index" json:"requester_id"`
	TargetManagerID uint   `gorm:"not null;index" json:"target_manager_id"`
	Message         string `gorm:"type:text" json:"message"`
	Status          string `gorm:"not null;default:'pending'" json:"status"` // pending, approved, declined
	IsAnonymous     bool   `gorm:"default:false" json:"is_anonymous"`

	// Relations
	Requester     User `gorm:"foreignKey:RequesterID" json:"-"`
	TargetManager User `gorm:"foreignKey:TargetManagerID" json:"-"`
}
