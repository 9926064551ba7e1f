package store

import (
	"gorm.io/gorm"

	"github.com/clientsbook/clientsbook-api/models"
)

// ClientStore is the Postgres-backed client base behind the booking flow.
type ClientStore struct {
	DB *gorm.DB
}

func NewClientStore(db *gorm.DB) *ClientStore {
	return &ClientStore{DB: db}
}

func (s *ClientStore) Get(providerID, clientID uint) (*models.Client, error) {
	var client models.Client
	err := s.DB.Where("id = ? AND provider_id = ?", clientID, providerID).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByPhone looks up a master's client by phone number. Not finding one is
// reported as gorm.ErrRecordNotFound.
func (s *ClientStore) FindByPhone(providerID uint, phone string) (*models.Client, error) {
	var client models.Client
	err := s.DB.Where("provider_id = ? AND phone = ?", providerID, phone).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientStore) Create(client *models.Client) error {
	return s.DB.Create(client).Error
}
