package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pousada-backend/models"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("maintenance_ticket_not_found")

var ticketStatuses = map[string]bool{
	models.TicketOpen:       true,
	models.TicketInProgress: true,
	models.TicketDone:       true,
}

var ticketPriorities = map[string]bool{
	models.PriorityLow:    true,
	models.PriorityMedium: true,
	models.PriorityHigh:   true,
}

type MaintenanceService struct {
	DB *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{DB: db}
}

func (s *MaintenanceService) Create(ticket *models.MaintenanceTicket) error {
	ticket.Title = strings.TrimSpace(ticket.Title)
	if ticket.Title == "" {
		return fmt.Errorf("validation: title is required")
	}

	var acc models.Accommodation
	if err := s.DB.First(&acc, ticket.AccommodationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccommodationNotFound
		}
		return fmt.Errorf("db error checking accommodation: %w", err)
	}

	if ticket.Priority == "" {
		ticket.Priority = models.PriorityMedium
	}
	if !ticketPriorities[ticket.Priority] {
		return fmt.Errorf("validation: invalid priority %q", ticket.Priority)
	}
	ticket.Status = models.TicketOpen
	ticket.ResolvedAt = nil

	return s.DB.Create(ticket).Error
}

// GetAll lists tickets, optionally filtered by status and/or accommodation.
func (s *MaintenanceService) GetAll(status string, accommodationID uint) ([]models.MaintenanceTicket, error) {
	query := s.DB.Preload("Accommodation").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if accommodationID != 0 {
		query = query.Where("accommodation_id = ?", accommodationID)
	}

	var tickets []models.MaintenanceTicket
	err := query.Find(&tickets).Error
	return tickets, err
}

func (s *MaintenanceService) GetByID(id uint) (models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	err := s.DB.Preload("Accommodation").First(&ticket, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket, ErrTicketNotFound
	}
	return ticket, err
}

func (s *MaintenanceService) Update(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")
	delete(updates, "status")
	delete(updates, "resolved_at")

	if p, ok := updates["priority"].(string); ok && !ticketPriorities[p] {
		return fmt.Errorf("validation: invalid priority %q", p)
	}

	result := s.DB.Model(&models.MaintenanceTicket{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// SetStatus moves the ticket; resolved_at is stamped when the ticket closes
// and cleared when it reopens.
func (s *MaintenanceService) SetStatus(id uint, status string) (models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	if !ticketStatuses[status] {
		return ticket, fmt.Errorf("validation: invalid status %q", status)
	}

	ticket, err := s.GetByID(id)
	if err != nil {
		return ticket, err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.TicketDone {
		now := time.Now().UTC()
		updates["resolved_at"] = &now
	} else {
		updates["resolved_at"] = nil
	}

	if err := s.DB.Model(&ticket).Updates(updates).Error; err != nil {
		return ticket, err
	}
	return s.GetByID(id)
}

func (s *MaintenanceService) Delete(id uint) error {
	result := s.DB.Delete(&models.MaintenanceTicket{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}
