package models

import (
	"gorm.io/gorm"
)

// BookingLink is the shareable code a master hands to clients. Resolving an
// active code is the public entry point into the booking flow.
type BookingLink struct {
	gorm.Model
	ProviderID uint   `json:"provider_id"`
	Provider   User   `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Code       string `json:"code" gorm:"unique"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}
