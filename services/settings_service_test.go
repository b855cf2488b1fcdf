package services

import (
	"strings"
	"testing"
	"time"

	"pousada-backend/models"
)

func summaryFixture() (models.Reservation, models.HotelSetting) {
	reservation := models.Reservation{
		ID:            1,
		ReferenceCode: "abc-123",
		GuestName:     "Maria Silva",
		People:        2,
		CheckIn:       date(2026, time.July, 10),
		CheckOut:      date(2026, time.July, 13),
		TotalPrice:    540,
		Notes:         "late arrival",
		Accommodation: models.Accommodation{Name: "Chalé 1", RoomNumber: "01"},
	}
	setting := models.HotelSetting{
		Name:           "Pousada Teste",
		CurrencySymbol: "R$",
		DateLayout:     "02/01/2006",
		CopyShowNotes:  true,
		CopyShowPrice:  true,
	}
	return reservation, setting
}

func TestFormatReservationSummary(t *testing.T) {
	t.Parallel()

	reservation, setting := summaryFixture()
	got := FormatReservationSummary(reservation, setting)

	for _, want := range []string{
		"Pousada Teste",
		"Maria Silva (2 pessoas)",
		"Check-in: 10/07/2026",
		"Check-out: 13/07/2026 (3 noites)",
		"Total: R$ 540.00",
		"Obs: late arrival",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestFormatReservationSummary_HonorsCopyFlags(t *testing.T) {
	t.Parallel()

	reservation, setting := summaryFixture()
	setting.CopyShowNotes = false
	setting.CopyShowPrice = false

	got := FormatReservationSummary(reservation, setting)
	if strings.Contains(got, "Total:") {
		t.Fatalf("price must be omitted when CopyShowPrice is off:\n%s", got)
	}
	if strings.Contains(got, "late arrival") {
		t.Fatalf("notes must be omitted when CopyShowNotes is off:\n%s", got)
	}
}

func TestFormatReservationSummary_Defaults(t *testing.T) {
	t.Parallel()

	reservation, _ := summaryFixture()
	got := FormatReservationSummary(reservation, models.HotelSetting{CopyShowPrice: true})
	if !strings.Contains(got, "Total: R$ 540.00") {
		t.Fatalf("empty settings must fall back to R$ and dd/mm/yyyy:\n%s", got)
	}
	if !strings.Contains(got, "10/07/2026") {
		t.Fatalf("default date layout missing:\n%s", got)
	}
}
