package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/clientsbook/clientsbook-api/models"
)

// WorkingSlotStore is the Postgres-backed window store handed to the
// scheduling engine.
type WorkingSlotStore struct {
	DB *gorm.DB
}

func NewWorkingSlotStore(db *gorm.DB) *WorkingSlotStore {
	return &WorkingSlotStore{DB: db}
}

func (s *WorkingSlotStore) ListWindows(providerID uint, date time.Time) ([]models.WorkingSlot, error) {
	var slots []models.WorkingSlot
	err := s.DB.
		Where("provider_id = ? AND date = ?", providerID, date.Format("2006-01-02")).
		Order("start_time").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *WorkingSlotStore) Create(slot *models.WorkingSlot) error {
	return s.DB.Create(slot).Error
}

func (s *WorkingSlotStore) Delete(providerID, slotID uint) error {
	return s.DB.
		Where("id = ? AND provider_id = ?", slotID, providerID).
		Delete(&models.WorkingSlot{}).Error
}

// ListRange returns a master's slots with dates in the half-open range
// [from, to), ordered by date then start time. Used by the weekly schedule
// view.
func (s *WorkingSlotStore) ListRange(providerID uint, from, to time.Time) ([]models.WorkingSlot, error) {
	var slots []models.WorkingSlot
	err := s.DB.
		Where("provider_id = ? AND date >= ? AND date < ?", providerID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date, start_time").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
