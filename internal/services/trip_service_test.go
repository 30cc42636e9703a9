package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripjournal/internal/models/db_models"
	"tripjournal/internal/models/request_models"
	"tripjournal/pkg/utils"
)

type fakeTripRepo struct {
	trips map[string]*db_models.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[string]*db_models.Trip)}
}

func (f *fakeTripRepo) Insert(ctx context.Context, trip *db_models.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID.String()] = trip
	return nil
}

func (f *fakeTripRepo) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	return f.trips[id], nil
}

func (f *fakeTripRepo) ListByUserID(ctx context.Context, userID string) ([]db_models.Trip, error) {
	var out []db_models.Trip
	for _, trip := range f.trips {
		if trip.UserID.String() == userID {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) FindByIDAndUserID(ctx context.Context, tripID, userID string) (*db_models.Trip, error) {
	trip := f.trips[tripID]
	if trip == nil || trip.UserID.String() != userID {
		return nil, nil
	}
	return trip, nil
}

func (f *fakeTripRepo) Delete(ctx context.Context, tripID, userID string) error {
	trip := f.trips[tripID]
	if trip != nil && trip.UserID.String() == userID {
		delete(f.trips, tripID)
	}
	return nil
}

func registeredAccount(t *testing.T, repo *fakeAccountRepo) *db_models.Account {
	t.Helper()
	account := &db_models.Account{
		Username:     "jozef",
		Email:        "jozef@example.com",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, repo.Insert(context.Background(), account))
	return account
}

func TestCreateTrip_Success(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	tripRepo := newFakeTripRepo()
	account := registeredAccount(t, accountRepo)
	service := NewTripService(tripRepo, accountRepo)

	rating := 4.5
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	resp, err := service.CreateTrip(context.Background(), account.ID.String(), request_models.CreateTripRequest{
		Title:       "Víkend vo Viedni",
		Description: "Múzeá a kaviarne",
		Rating:      &rating,
		Visibility:  "public",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
	})

	require.NoError(t, err)
	assert.Equal(t, "Víkend vo Viedni", resp.Title)
	assert.Equal(t, "public", resp.Visibility)
	require.NotNil(t, resp.Rating)
	assert.Equal(t, 4.5, *resp.Rating)
	assert.NotEmpty(t, resp.StartDate)
}

func TestCreateTrip_DefaultsToPrivate(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	account := registeredAccount(t, accountRepo)
	service := NewTripService(newFakeTripRepo(), accountRepo)

	resp, err := service.CreateTrip(context.Background(), account.ID.String(), request_models.CreateTripRequest{
		Title: "Tajný výlet",
	})

	require.NoError(t, err)
	assert.Equal(t, "private", resp.Visibility)
}

func TestCreateTrip_UnknownAccount(t *testing.T) {
	service := NewTripService(newFakeTripRepo(), newFakeAccountRepo())

	_, err := service.CreateTrip(context.Background(), uuid.NewString(), request_models.CreateTripRequest{
		Title: "Výlet",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestListTripsByUser(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	tripRepo := newFakeTripRepo()
	account := registeredAccount(t, accountRepo)
	service := NewTripService(tripRepo, accountRepo)

	for _, title := range []string{"Viedeň", "Praha"} {
		_, err := service.CreateTrip(context.Background(), account.ID.String(), request_models.CreateTripRequest{Title: title})
		require.NoError(t, err)
	}

	trips, err := service.ListTripsByUser(context.Background(), account.ID.String())

	require.NoError(t, err)
	assert.Len(t, trips, 2)
}

func TestDeleteTrip_OwnerOnly(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	tripRepo := newFakeTripRepo()
	account := registeredAccount(t, accountRepo)
	service := NewTripService(tripRepo, accountRepo)

	resp, err := service.CreateTrip(context.Background(), account.ID.String(), request_models.CreateTripRequest{Title: "Viedeň"})
	require.NoError(t, err)

	err = service.DeleteTrip(context.Background(), uuid.NewString(), resp.ID)
	assert.ErrorIs(t, err, utils.ErrNotTripOwner)

	require.NoError(t, service.DeleteTrip(context.Background(), account.ID.String(), resp.ID))

	trips, err := service.ListTripsByUser(context.Background(), account.ID.String())
	require.NoError(t, err)
	assert.Empty(t, trips)
}
