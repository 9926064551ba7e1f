package models

import (
	"gorm.io/gorm"
)

// Client is a person who books with a master. Clients are records owned by
// the master, not login accounts.
type Client struct {
	gorm.Model
	ProviderID   uint          `json:"provider_id"`
	Provider     User          `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Notes        string        `json:"notes"`
	Contact      string        `json:"contact"` // messenger handle, optional
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:ClientID"`
}
