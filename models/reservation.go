package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reservation statuses.
const (
	ReservationPending    = "pending"
	ReservationConfirmed  = "confirmed"
	ReservationCheckedIn  = "checked_in"
	ReservationCheckedOut = "checked_out"
	ReservationCancelled  = "cancelled"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AccommodationID uint `gorm:"column:accommodation_id;index" json:"accommodationId"`

	// GuestID references a guest record; GuestName covers walk-ins booked
	// without one. At least one of the two is required.
	GuestID   *uint  `gorm:"column:guest_id;index" json:"guestId,omitempty"`
	GuestName string `gorm:"column:guest_name;size:255" json:"guestName,omitempty"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	Status        string `gorm:"column:status;size:32;index" json:"status"`

	// Date-only, half-open stay range: the guest occupies the nights of
	// [check_in, check_out). Checkout day is free for a new check-in.
	CheckIn  time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out" json:"checkOut"`

	People    int  `gorm:"column:people;default:1" json:"people"`
	Breakfast bool `gorm:"column:breakfast;default:false" json:"breakfast"`

	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`
	Notes      string  `gorm:"column:notes;type:text" json:"notes,omitempty"`

	// Accompanying guests captured at booking time, stored as JSON.
	ExtraGuests datatypes.JSON `gorm:"column:extra_guests" json:"extraGuests,omitempty"`

	StartedAt   *time.Time `gorm:"column:started_at" json:"startedAt,omitempty"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`

	// External calendar event id, empty when sync is disabled or not yet done.
	CalendarEventID string `gorm:"column:calendar_event_id;size:128" json:"calendarEventId,omitempty"`

	Accommodation Accommodation `gorm:"foreignKey:AccommodationID;references:ID" json:"accommodation,omitempty"`
	Guest         *Guest        `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
}

// Occupies reports whether the reservation counts against availability.
func (r *Reservation) Occupies() bool {
	return r.Status != ReservationCancelled
}

// Nights is the number of occupied nights.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
