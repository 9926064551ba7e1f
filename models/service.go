package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name       string `json:"name"`
	Duration   int    `json:"duration"` // minutes
	Price      int    `json:"price"`
	ProviderID uint   `json:"provider_id"`
	Provider   User   `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}
