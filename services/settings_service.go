package services

import (
	"errors"
	"fmt"
	"strings"

	"pousada-backend/models"

	"gorm.io/gorm"
)

// SettingsService owns the single settings row. Formatting code receives the
// loaded row as an argument; nothing reads settings through a package global.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) Get() (models.HotelSetting, error) {
	var setting models.HotelSetting
	err := s.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HotelSetting{}, nil
	}
	return setting, err
}

func (s *SettingsService) Update(payload models.HotelSetting) (models.HotelSetting, error) {
	var setting models.HotelSetting
	err := s.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = payload
		if err := s.DB.Create(&setting).Error; err != nil {
			return setting, err
		}
		return setting, nil
	}
	if err != nil {
		return setting, err
	}

	updates := map[string]interface{}{
		"name":            payload.Name,
		"address":         payload.Address,
		"phone":           payload.Phone,
		"email":           payload.Email,
		"website":         payload.Website,
		"logo":            payload.Logo,
		"currency_symbol": payload.CurrencySymbol,
		"date_layout":     payload.DateLayout,
		"copy_show_notes": payload.CopyShowNotes,
		"copy_show_price": payload.CopyShowPrice,
	}
	if err := s.DB.Model(&setting).Updates(updates).Error; err != nil {
		return setting, err
	}
	return setting, s.DB.First(&setting).Error
}

// FormatReservationSummary renders the copy-paste text the dashboard offers
// for a reservation, honoring the copy-format settings passed in.
func FormatReservationSummary(r models.Reservation, setting models.HotelSetting) string {
	layout := setting.DateLayout
	if layout == "" {
		layout = "02/01/2006"
	}
	currency := setting.CurrencySymbol
	if currency == "" {
		currency = "R$"
	}

	guest := r.GuestName
	if guest == "" && r.Guest != nil {
		guest = r.Guest.FullName
	}

	var b strings.Builder
	if setting.Name != "" {
		fmt.Fprintf(&b, "%s\n", setting.Name)
	}
	fmt.Fprintf(&b, "Reserva %s\n", r.ReferenceCode)
	if guest != "" {
		fmt.Fprintf(&b, "Hóspede: %s (%d pessoas)\n", guest, r.People)
	}
	if r.Accommodation.Name != "" {
		fmt.Fprintf(&b, "Acomodação: %s (nº %s)\n", r.Accommodation.Name, r.Accommodation.RoomNumber)
	}
	fmt.Fprintf(&b, "Check-in: %s\nCheck-out: %s (%d noites)\n",
		r.CheckIn.Format(layout), r.CheckOut.Format(layout), r.Nights())
	if r.Breakfast {
		b.WriteString("Com café da manhã\n")
	} else {
		b.WriteString("Sem café da manhã\n")
	}
	if setting.CopyShowPrice {
		fmt.Fprintf(&b, "Total: %s %.2f\n", currency, r.TotalPrice)
	}
	if setting.CopyShowNotes && strings.TrimSpace(r.Notes) != "" {
		fmt.Fprintf(&b, "Obs: %s\n", strings.TrimSpace(r.Notes))
	}
	return b.String()
}
