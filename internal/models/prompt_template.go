package models

import (
	"time"
)

// PromptTemplate holds a named, versioned prompt skeleton. Multiple rows may
// share a name; the most recently created one is the active version.
type PromptTemplate struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"type:text;not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Template    string    `gorm:"type:text;not null" json:"template"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (PromptTemplate) TableName() string {
	return "prompt_templates"
}
