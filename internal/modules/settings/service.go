package settings

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/notedesk/core/internal/models"
)

// Service is a process-wide string key/value store backed by the options
// table. Holds UI preferences and runtime overrides like the chat system
// prompt.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// All returns every stored option.
func (s *Service) All() ([]models.OptionModel, error) {
	var rows []models.OptionModel
	if err := s.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns one option, or (nil, nil) when the key does not exist.
func (s *Service) Get(name string) (*models.OptionModel, error) {
	var row models.OptionModel
	err := s.db.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Value is the read surface other modules use. The bool reports existence.
func (s *Service) Value(name string) (string, bool) {
	row, err := s.Get(name)
	if err != nil || row == nil {
		return "", false
	}
	return row.Value, true
}

// Set upserts one option.
func (s *Service) Set(name, value string) (*models.OptionModel, error) {
	opt := models.OptionModel{Name: name, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&opt).Error
	if err != nil {
		return nil, err
	}
	return s.Get(name)
}

// Delete removes one option. Reports whether the key existed.
func (s *Service) Delete(name string) (bool, error) {
	result := s.db.Where("name = ?", name).Delete(&models.OptionModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
