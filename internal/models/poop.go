package models

import "time"

// Poop is a single digestive symptom entry. It carries only a description
// and a timestamp; entries are kept separate from meals so users can record
// symptoms independently.
type Poop struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	Description string    `json:"description" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}
