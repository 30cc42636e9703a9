package request_models

import "time"

type CreateTripRequest struct {
	Title       string    `json:"trip_title" binding:"required,min=1,max=200"`
	Description string    `json:"trip_description"`
	Rating      *float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Visibility  string    `json:"visibility" binding:"omitempty,oneof=public private friends"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}
