package db_models

import "github.com/google/uuid"

type Notification struct {
	BaseModel
	UserID  uuid.UUID
	Type    string
	Message string
	IsRead  bool
}
