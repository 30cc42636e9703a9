package services

import (
	"context"

	"github.com/google/uuid"
	"tripjournal/internal/models/db_models"
	"tripjournal/internal/models/request_models"
	"tripjournal/internal/models/response_models"
	"tripjournal/internal/repositories"
	"tripjournal/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	ListTripsByUser(ctx context.Context, userID string) ([]response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userID, tripID string) error
}

type TripService struct {
	tripRepo    repositories.TripRepository
	accountRepo repositories.AccountRepository
}

func NewTripService(tripRepo repositories.TripRepository, accountRepo repositories.AccountRepository) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		accountRepo: accountRepo,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, userID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	account, err := t.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	visibility := request.Visibility
	if visibility == "" {
		visibility = "private"
	}

	trip := &db_models.Trip{
		UserID:      uid,
		Title:       request.Title,
		Description: request.Description,
		Rating:      request.Rating,
		Visibility:  visibility,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toTripResponse(trip), nil
}

func (t *TripService) ListTripsByUser(ctx context.Context, userID string) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *toTripResponse(&trips[i]))
	}
	return out, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	trip, err := t.tripRepo.FindByIDAndUserID(ctx, tripID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrNotTripOwner
	}

	if err := t.tripRepo.Delete(ctx, tripID, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toTripResponse(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Description: trip.Description,
		Rating:      trip.Rating,
		Visibility:  trip.Visibility,
		StartDate:   utils.FormatRFC3339(trip.StartDate),
		EndDate:     utils.FormatRFC3339(trip.EndDate),
	}
}
