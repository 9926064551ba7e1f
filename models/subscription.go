package models

import (
	"time"

	"gorm.io/gorm"
)

type PremiumSubscription struct {
	gorm.Model
	ProviderID uint      `json:"provider_id"`
	Provider   User      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	PlanType   string    `json:"plan_type" gorm:"default:basic"`
	IsActive   bool      `json:"is_active" gorm:"default:false"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Current reports whether the subscription is active and not yet expired.
func (s *PremiumSubscription) Current(now time.Time) bool {
	return s.IsActive && s.ExpiresAt.After(now)
}
