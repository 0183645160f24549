package models

// Allowed sentiment values for a feedback entry.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Feedback is a structured entry a manager submits about an employee.
// CreatedAt is assigned by the store and never updated afterwards.
type Feedback struct {
	Model

	EmployeeID   uint   `gorm:"not null;index" json:"employee_id"`
	ManagerID    uint   `gorm:"not null;index" json:"manager_id"`
	Strengths    string `gorm:"type:text;not null" json:"strengths"`
	Improvements string `gorm:"type:text;not null" json:"improvements"`
	Sentiment    string `gorm:"not null" json:"sentiment"` // positive, neutral, negative

	// Relations
	Employee         User              `gorm:"foreignKey:EmployeeID" json:"-"`
	Manager          User              `gorm:"foreignKey:ManagerID" json:"-"`
	Comments         []Comment         `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"-"`
	Acknowledgements []Acknowledgement `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"-"`
	Tags             []Tag             `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"-"`
}

// Comment is an append-only discussion entry on a feedback item.
type Comment struct {
	Model

	FeedbackID uint   `gorm:"not null;index" json:"feedback_id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsMarkdown bool   `gorm:"not null" json:"is_markdown"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Acknowledgement marks that an employee has seen a feedback item.
// Append-only; duplicates for the same pair are permitted.
type Acknowledgement struct {
	Model

	FeedbackID uint `gorm:"not null;index" json:"feedback_id"`
	EmployeeID uint `gorm:"not null;index" json:"employee_id"`
}

// Tag is a free-text label attached to a feedback item.
type Tag struct {
	Model

	FeedbackID uint   `gorm:"not null;index" json:"feedback_id"`
	TagName    string `gorm:"size:50;not null" json:"tag_name"`
}
