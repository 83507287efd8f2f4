package models

import "time"

// Image is a stored attachment reference: a publicly fetchable URL plus the
// opaque key the storage backend accepts for deletion.
type Image struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// MealImage is one attachment row of a meal. Position preserves upload order.
type MealImage struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	MealID   string `json:"-" gorm:"index;type:varchar(36)"`
	Position int    `json:"-"`
	URL      string `json:"url"`
	Key      string `json:"key"`
}

// Meal is a single meal entry with one or more image attachments. The
// legacy single-image field mirrors the first entry of Images for older
// clients that predate multi-image support.
type Meal struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string      `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	Images      []MealImage `json:"images" gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	Image       *Image      `json:"image,omitempty" gorm:"embedded;embeddedPrefix:image_"`
	Description string      `json:"description" validate:"required"`
	CreatedAt   time.Time   `json:"created_at"`
}
