package services

import (
	"context"

	"tripjournal/internal/models/db_models"
	"tripjournal/internal/models/request_models"
	"tripjournal/internal/models/response_models"
	"tripjournal/internal/repositories"
	"tripjournal/pkg/utils"
)

type MarkerServiceInterface interface {
	CreateMarker(ctx context.Context, userID, tripID string, request request_models.CreateMarkerRequest) (*response_models.MarkerResponse, error)
	ListMarkers(ctx context.Context, userID, tripID string) ([]response_models.MarkerResponse, error)
	DeleteMarker(ctx context.Context, userID, markerID string) error
}

type MarkerService struct {
	markerRepo repositories.MarkerRepository
	tripRepo   repositories.TripRepository
}

func NewMarkerService(markerRepo repositories.MarkerRepository, tripRepo repositories.TripRepository) MarkerServiceInterface {
	return &MarkerService{
		markerRepo: markerRepo,
		tripRepo:   tripRepo,
	}
}

func (m *MarkerService) CreateMarker(ctx context.Context, userID, tripID string, request request_models.CreateMarkerRequest) (*response_models.MarkerResponse, error) {
	trip, err := m.tripRepo.FindByIDAndUserID(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrNotTripOwner
	}

	marker := &db_models.Marker{
		TripID:    trip.ID,
		Label:     request.Label,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		Tags:      request.Tags,
	}

	if err := m.markerRepo.Insert(ctx, marker); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toMarkerResponse(marker), nil
}

func (m *MarkerService) ListMarkers(ctx context.Context, userID, tripID string) ([]response_models.MarkerResponse, error) {
	trip, err := m.tripRepo.FindByIDAndUserID(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrNotTripOwner
	}

	markers, err := m.markerRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MarkerResponse, 0, len(markers))
	for i := range markers {
		out = append(out, *toMarkerResponse(&markers[i]))
	}
	return out, nil
}

func (m *MarkerService) DeleteMarker(ctx context.Context, userID, markerID string) error {
	marker, err := m.markerRepo.FindByID(ctx, markerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if marker == nil {
		return utils.ErrMarkerNotFound
	}

	trip, err := m.tripRepo.FindByIDAndUserID(ctx, marker.TripID.String(), userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrNotTripOwner
	}

	if err := m.markerRepo.Delete(ctx, markerID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toMarkerResponse(marker *db_models.Marker) *response_models.MarkerResponse {
	return &response_models.MarkerResponse{
		ID:        marker.ID.String(),
		Label:     marker.Label,
		Latitude:  marker.Latitude,
		Longitude: marker.Longitude,
		Tags:      marker.Tags,
	}
}
