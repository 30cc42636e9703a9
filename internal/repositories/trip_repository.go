package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tripjournal/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, id string) (*db_models.Trip, error)
	ListByUserID(ctx context.Context, userID string) ([]db_models.Trip, error)
	FindByIDAndUserID(ctx context.Context, tripID, userID string) (*db_models.Trip, error)
	Delete(ctx context.Context, tripID, userID string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (t *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (t *tripRepository) ListByUserID(ctx context.Context, userID string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := t.db.WithContext(ctx).Where("user_id = ?", userID).Find(&trips).Error
	return trips, err
}

func (t *tripRepository) FindByIDAndUserID(ctx context.Context, tripID, userID string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (t *tripRepository) Delete(ctx context.Context, tripID, userID string) error {
	return t.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		Delete(&db_models.Trip{}).Error
}
