package models

import "time"

// APIValidationModel records each time a client validates an API key.
// Count accumulates per key; LocalTime is the validation moment rendered in
// the configured timezone.
type APIValidationModel struct {
	Base
	APIKey      string    `json:"api_key"      gorm:"uniqueIndex;not null"`
	Count       int       `json:"count"        gorm:"default:1"`
	ValidatedAt time.Time `json:"validated_at"`
	LocalTime   time.Time `json:"local_time"`
}

func (APIValidationModel) TableName() string { return "api_validations" }
