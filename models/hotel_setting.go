package models

import "time"

// HotelSetting is a single-row table holding hotel identity plus the
// copy-format settings used when rendering reservation summaries. The row is
// loaded and threaded explicitly into formatting code; there is no package
// global.
type HotelSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	Website   string    `gorm:"size:255" json:"website"`
	Logo      string    `gorm:"size:255" json:"logo"`

	// Copy-format settings for reservation summaries.
	CurrencySymbol string `gorm:"size:10;default:R$" json:"currencySymbol"`
	DateLayout     string `gorm:"size:32;default:02/01/2006" json:"dateLayout"`
	CopyShowNotes  bool   `gorm:"default:true" json:"copyShowNotes"`
	CopyShowPrice  bool   `gorm:"default:true" json:"copyShowPrice"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
