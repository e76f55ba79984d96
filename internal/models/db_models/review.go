package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Review struct {
	BaseModel
	PlaceID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserID     string         `gorm:"size:64"` // optional, free text from the client
	Rating     int            `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	SafetyTags pq.StringArray `gorm:"type:text[]"`
	Comment    string         `gorm:"type:text"`
	NightSafe  bool
	Harassment bool
}
