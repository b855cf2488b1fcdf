package models

import (
	"time"
)

// Guest is soft-deleted via the Active flag rather than a deleted_at column:
// historical reservations keep referencing deactivated guests and must still
// resolve them by id.
type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName    string `json:"fullName" gorm:"size:255"`
	Email       string `json:"email" gorm:"size:150"`
	Phone       string `json:"phone" gorm:"size:50"`
	Document    string `json:"document" gorm:"size:100"`
	Nationality string `json:"nationality" gorm:"size:100"`

	Active bool `gorm:"column:active;default:true;index" json:"active"`
}
