package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkingSlot is one interval on a master's calendar day. An open slot
// (IsBlocked == false) accepts bookings; a blocked one marks rest time.
// Several slots may coexist on the same date and may overlap each other.
type WorkingSlot struct {
	gorm.Model
	ProviderID uint      `json:"provider_id"`
	Provider   User      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Date       time.Time `json:"date" gorm:"type:date"`
	StartTime  string    `json:"start_time"` // "HH:MM", 24h
	EndTime    string    `json:"end_time"`   // "HH:MM", 24h
	IsBlocked  bool      `json:"is_blocked" gorm:"default:false"`
}
