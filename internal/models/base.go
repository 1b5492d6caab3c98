package models

import "time"

// Base is the base model for all entities. IDs are storage-assigned
// auto-increment integers; timestamps use the wire names the web client
// has always consumed.
type Base struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
