package validate

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/notedesk/core/internal/models"
)

var ErrKeyRequired = errors.New("api key is required")

// Service keeps the api_validations ledger: one row per distinct key, with a
// running count and the moment of the most recent validation.
type Service struct {
	db  *gorm.DB
	loc *time.Location
}

// NewService records local_time in loc; nil falls back to UTC.
func NewService(db *gorm.DB, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{db: db, loc: loc}
}

// Record upserts one validation event for the key.
func (s *Service) Record(apiKey string) (*models.APIValidationModel, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrKeyRequired
	}

	now := time.Now().UTC()
	local := now.In(s.loc)

	row, err := s.Get(apiKey)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row = &models.APIValidationModel{
			APIKey:      apiKey,
			Count:       1,
			ValidatedAt: now,
			LocalTime:   local,
		}
		if err := s.db.Create(row).Error; err != nil {
			return nil, err
		}
		return row, nil
	}

	updates := map[string]interface{}{
		"count":        row.Count + 1,
		"validated_at": now,
		"local_time":   local,
	}
	if err := s.db.Model(row).Updates(updates).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns the ledger row for a key, or (nil, nil) when unseen.
func (s *Service) Get(apiKey string) (*models.APIValidationModel, error) {
	var row models.APIValidationModel
	err := s.db.Where("api_key = ?", apiKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the whole ledger, most recently validated first.
func (s *Service) List() ([]models.APIValidationModel, error) {
	var rows []models.APIValidationModel
	if err := s.db.Order("validated_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
