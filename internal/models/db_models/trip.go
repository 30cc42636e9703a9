package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID
	Title       string
	Description string
	Rating      *float64
	Visibility  string
	StartDate   time.Time
	EndDate     time.Time

	Markers []Marker `gorm:"foreignKey:TripID"`
	Photos  []Photo  `gorm:"foreignKey:TripID"`
}
