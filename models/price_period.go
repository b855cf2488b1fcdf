package models

import (
	"time"

	"gorm.io/gorm"
)

// PricePeriod is a named date range used to select applicable rates.
// StartDate and EndDate are inclusive calendar dates. Periods may overlap;
// holiday periods take precedence at resolution time, and CreatedAt breaks
// ties between periods with the same holiday flag.
type PricePeriod struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string    `json:"name" gorm:"size:255"`
	StartDate time.Time `gorm:"column:start_date;index" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date;index" json:"endDate"`
	Holiday   bool      `gorm:"column:holiday;default:false" json:"holiday"`
	MinNights int       `gorm:"column:min_nights;default:1" json:"minNights"`
}

// Covers reports whether date falls inside the period (inclusive both ends).
func (p *PricePeriod) Covers(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}
