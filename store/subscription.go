package store

import (
	"gorm.io/gorm"

	"github.com/clientsbook/clientsbook-api/models"
)

// SubscriptionStore persists premium subscriptions, one row per master.
type SubscriptionStore struct {
	DB *gorm.DB
}

func NewSubscriptionStore(db *gorm.DB) *SubscriptionStore {
	return &SubscriptionStore{DB: db}
}

// ByProvider returns the master's subscription row. A master who never paid
// yields gorm.ErrRecordNotFound.
func (s *SubscriptionStore) ByProvider(providerID uint) (*models.PremiumSubscription, error) {
	var sub models.PremiumSubscription
	err := s.DB.Where("provider_id = ?", providerID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionStore) Save(sub *models.PremiumSubscription) error {
	if sub.ID == 0 {
		return s.DB.Create(sub).Error
	}
	return s.DB.Save(sub).Error
}
