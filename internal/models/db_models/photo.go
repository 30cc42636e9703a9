package db_models

import "github.com/google/uuid"

type Photo struct {
	BaseModel
	TripID   uuid.UUID
	FileName string
	Path     string
}
