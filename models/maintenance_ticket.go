package models

import (
	"time"

	"gorm.io/gorm"
)

// Maintenance ticket priorities and statuses.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketDone       = "done"
)

type MaintenanceTicket struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AccommodationID uint `gorm:"column:accommodation_id;index" json:"accommodationId"`

	Title       string `json:"title" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`
	Priority    string `json:"priority" gorm:"size:32;default:medium"`
	Status      string `json:"status" gorm:"size:32;default:open;index"`

	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolvedAt,omitempty"`

	Accommodation Accommodation `gorm:"foreignKey:AccommodationID;references:ID" json:"accommodation,omitempty"`
}
