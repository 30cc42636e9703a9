package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Marker struct {
	BaseModel
	TripID    uuid.UUID
	Label     string
	Latitude  float64
	Longitude float64
	Tags      pq.StringArray `gorm:"type:text[]"`
}
