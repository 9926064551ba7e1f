package models

import (
	"time"
)

// User is a master: the owner of a schedule, a service list and a client base.
type User struct {
	ID           uint                 `json:"id" gorm:"primaryKey"`
	Name         string               `json:"name"`
	Email        string               `json:"email" gorm:"unique"`
	Password     string               `json:"password,omitempty"`
	Phone        string               `json:"phone"`
	Specialty    string               `json:"specialty"`
	Services     []Service            `json:"services,omitempty" gorm:"foreignKey:ProviderID"`
	Clients      []Client             `json:"clients,omitempty" gorm:"foreignKey:ProviderID"`
	Appointments []Appointment        `json:"appointments,omitempty" gorm:"foreignKey:ProviderID"`
	WorkingSlots []WorkingSlot        `json:"working_slots,omitempty" gorm:"foreignKey:ProviderID"`
	BookingLink  *BookingLink         `json:"booking_link,omitempty" gorm:"foreignKey:ProviderID"`
	Subscription *PremiumSubscription `json:"subscription,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
