package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/clientsbook/clientsbook-api/models"
)

// AppointmentStore is the Postgres-backed appointment store handed to the
// scheduling engine.
type AppointmentStore struct {
	DB *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{DB: db}
}

// ListBooked returns only status=booked appointments starting in [from, to).
func (s *AppointmentStore) ListBooked(providerID uint, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.DB.
		Where("provider_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			providerID, models.StatusBooked, from, to).
		Order("start_time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentStore) Insert(appointment *models.Appointment) error {
	return s.DB.Create(appointment).Error
}

// ListUpcoming returns a master's booked appointments from now on, with the
// client and service preloaded for display.
func (s *AppointmentStore) ListUpcoming(providerID uint, now time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.DB.
		Preload("Client").Preload("Service").
		Where("provider_id = ? AND status = ? AND start_time >= ?", providerID, models.StatusBooked, now).
		Order("start_time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
