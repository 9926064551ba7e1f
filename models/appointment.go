package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

type Appointment struct {
	gorm.Model
	ProviderID uint              `json:"provider_id"`
	Provider   User              `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ClientID   uint              `json:"client_id"`
	Client     Client            `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ServiceID  uint              `json:"service_id"`
	Service    Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	Status     AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusBooked
	}
	return nil
}

// UpdateStatus enforces the appointment lifecycle: booked appointments may be
// completed or canceled, finished ones stay as they are.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusBooked:
		if newStatus != StatusCompleted && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from booked to %s", newStatus)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}
