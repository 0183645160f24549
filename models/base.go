package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the embedded base for every persisted entity. Same shape as
// gorm.Model, with json tags so ids and timestamps serialize in the
// lowercase form the API exposes everywhere else.
type Model struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"timestamp"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
