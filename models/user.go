package models

// User roles. Every account is one or the other; managers author feedback,
// employees receive it.
const (
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// User represents an account in the directory
type User struct {
	Model

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:'Employee'" json:"role"` // Manager or Employee

	// Relations
	FeedbackReceived []Feedback `gorm:"foreignKey:EmployeeID" json:"-"`
	FeedbackAuthored []Feedback `gorm:"foreignKey:ManagerID" json:"-"`
}

// Team is a managership edge between a manager and an employee.
// The (manager_id, employee_id) pair is unique at the application layer.
type Team struct {
	Model
	ManagerID  uint `gorm:"not null;index" json:"manager_id"`
	EmployeeID uint `gorm:"not null;index" json:"employee_id"`

	// Relations
	Manager  User `gorm:"foreignKey:ManagerID" json:"-"`
	Employee User `gorm:"foreignKey:EmployeeID" json:"-"`
}
