package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Accommodation categories are a fixed set; anything else is rejected at the
// controller layer before it reaches the database.
const (
	CategoryStandard  = "Standard"
	CategoryLuxo      = "Luxo"
	CategorySuperLuxo = "Super Luxo"
	CategoryMaster    = "Master"
)

var AccommodationCategories = []string{
	CategoryStandard,
	CategoryLuxo,
	CategorySuperLuxo,
	CategoryMaster,
}

func IsValidCategory(category string) bool {
	for _, c := range AccommodationCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Accommodation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string `json:"name" gorm:"size:255"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Category   string `json:"category" gorm:"size:50;index"`
	Capacity   int    `json:"capacity" gorm:"column:capacity"`

	Description string `json:"description" gorm:"type:text"`

	// Uploaded image URLs, stored as a JSON array.
	Images datatypes.JSON `gorm:"column:images" json:"images,omitempty"`

	// Manual block, independent of deletion. A block without a date range
	// blocks the accommodation for every date.
	Blocked     bool       `gorm:"column:blocked;default:false" json:"blocked"`
	BlockReason string     `gorm:"column:block_reason;size:255" json:"blockReason,omitempty"`
	BlockNote   string     `gorm:"column:block_note;type:text" json:"blockNote,omitempty"`
	BlockStart  *time.Time `gorm:"column:block_start" json:"blockStart,omitempty"`
	BlockEnd    *time.Time `gorm:"column:block_end" json:"blockEnd,omitempty"`
}

// BlocksDate reports whether the manual block covers the given date. The
// block range is inclusive on both ends (it marks whole days out of service,
// not stay nights).
func (a *Accommodation) BlocksDate(date time.Time) bool {
	if !a.Blocked {
		return false
	}
	if a.BlockStart == nil && a.BlockEnd == nil {
		return true
	}
	if a.BlockStart != nil && date.Before(*a.BlockStart) {
		return false
	}
	if a.BlockEnd != nil && date.After(*a.BlockEnd) {
		return false
	}
	return true
}

// BlocksRange reports whether the manual block overlaps the half-open stay
// range [checkIn, checkOut).
func (a *Accommodation) BlocksRange(checkIn, checkOut time.Time) bool {
	if !a.Blocked {
		return false
	}
	if a.BlockStart == nil && a.BlockEnd == nil {
		return true
	}
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		if a.BlocksDate(d) {
			return true
		}
	}
	return false
}
