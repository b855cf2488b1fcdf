package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"pousada-backend/models"

	"gorm.io/gorm"
)

// CalendarEvent is the payload mirrored to the external calendar, one event
// per reservation.
type CalendarEvent struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Notes string    `json:"notes,omitempty"`
}

// CalendarClient is the external calendar contract. Implementations must be
// safe for concurrent use; SyncReservation calls them from goroutines.
type CalendarClient interface {
	CreateEvent(ctx context.Context, ev CalendarEvent) (string, error)
	UpdateEvent(ctx context.Context, eventID string, ev CalendarEvent) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// webhookCalendarClient talks to a small serverless endpoint that owns the
// real calendar integration.
type webhookCalendarClient struct {
	baseURL string
	http    *http.Client
}

// NewCalendarClientFromEnv returns nil when CALENDAR_SYNC_URL is unset, which
// disables sync entirely.
func NewCalendarClientFromEnv() CalendarClient {
	base := strings.TrimSpace(os.Getenv("CALENDAR_SYNC_URL"))
	if base == "" {
		return nil
	}
	return &webhookCalendarClient{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *webhookCalendarClient) do(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("calendar endpoint returned %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *webhookCalendarClient) CreateEvent(ctx context.Context, ev CalendarEvent) (string, error) {
	var resp struct {
		EventID string `json:"eventId"`
	}
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/events", ev, &resp); err != nil {
		return "", err
	}
	return resp.EventID, nil
}

func (c *webhookCalendarClient) UpdateEvent(ctx context.Context, eventID string, ev CalendarEvent) error {
	return c.do(ctx, http.MethodPut, c.baseURL+"/events/"+eventID, ev, nil)
}

func (c *webhookCalendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/events/"+eventID, nil, nil)
}

// CalendarService mirrors reservations to the external calendar. Every call
// is best-effort and fire-and-forget: a sync failure is logged and never
// blocks reservation persistence.
type CalendarService struct {
	DB     *gorm.DB
	Client CalendarClient
}

func NewCalendarService(db *gorm.DB, client CalendarClient) *CalendarService {
	return &CalendarService{DB: db, Client: client}
}

func eventForReservation(r *models.Reservation) CalendarEvent {
	title := r.GuestName
	if title == "" && r.Guest != nil {
		title = r.Guest.FullName
	}
	if title == "" {
		title = r.ReferenceCode
	}
	return CalendarEvent{
		Title: fmt.Sprintf("%s — %s", r.Accommodation.Name, title),
		Start: r.CheckIn,
		End:   r.CheckOut,
		Notes: r.Notes,
	}
}

// SyncReservation creates or updates the external event and stores the event
// id back on the reservation row.
func (s *CalendarService) SyncReservation(reservation models.Reservation) {
	if s == nil || s.Client == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		ev := eventForReservation(&reservation)
		if reservation.CalendarEventID == "" {
			eventID, err := s.Client.CreateEvent(ctx, ev)
			if err != nil {
				log.Printf("calendar sync: create event for reservation %d failed: %v", reservation.ID, err)
				return
			}
			if err := s.DB.Model(&models.Reservation{}).
				Where("id = ?", reservation.ID).
				Update("calendar_event_id", eventID).Error; err != nil {
				log.Printf("calendar sync: failed to store event id for reservation %d: %v", reservation.ID, err)
			}
			return
		}

		if err := s.Client.UpdateEvent(ctx, reservation.CalendarEventID, ev); err != nil {
			log.Printf("calendar sync: update event for reservation %d failed: %v", reservation.ID, err)
		}
	}()
}

// RemoveReservation deletes the external event, if one was ever created.
func (s *CalendarService) RemoveReservation(reservation models.Reservation) {
	if s == nil || s.Client == nil || reservation.CalendarEventID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.Client.DeleteEvent(ctx, reservation.CalendarEventID); err != nil {
			log.Printf("calendar sync: delete event for reservation %d failed: %v", reservation.ID, err)
		}
	}()
}
