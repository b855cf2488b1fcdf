package models

import (
	"time"
)

// PriceEntry is a nightly rate for one accommodation, period, occupancy and
// breakfast option. The composite unique index is the natural key the atomic
// upsert relies on; without it two concurrent writers could still insert
// duplicate rows.
type PriceEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	AccommodationID uint `gorm:"column:accommodation_id;uniqueIndex:idx_price_entry_key;index" json:"accommodationId"`
	PricePeriodID   uint `gorm:"column:price_period_id;uniqueIndex:idx_price_entry_key;index" json:"pricePeriodId"`
	People          int  `gorm:"column:people;uniqueIndex:idx_price_entry_key" json:"people"`
	Breakfast       bool `gorm:"column:breakfast;uniqueIndex:idx_price_entry_key" json:"breakfast"`

	NightlyPrice float64 `gorm:"column:nightly_price" json:"nightlyPrice"`

	Accommodation Accommodation `gorm:"foreignKey:AccommodationID;references:ID" json:"-"`
	PricePeriod   PricePeriod   `gorm:"foreignKey:PricePeriodID;references:ID" json:"-"`
}
