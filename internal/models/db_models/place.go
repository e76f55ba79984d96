package db_models

import "github.com/lib/pq"

type Place struct {
	BaseModel
	Name        string         `gorm:"not null;index"`
	City        string         `gorm:"not null;index"`
	Type        string         `gorm:"not null"`
	Description string         `gorm:"type:text"`
	MainTags    pq.StringArray `gorm:"type:text[]"`
	// SafetyScore is the mean review rating, nil until the first review.
	SafetyScore *float64
	ReviewCount int `gorm:"not null;default:0"`
	Reviews     []Review
}
