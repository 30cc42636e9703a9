package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tripjournal/internal/models/db_models"
)

type MarkerRepository interface {
	Insert(ctx context.Context, marker *db_models.Marker) error
	FindByID(ctx context.Context, id string) (*db_models.Marker, error)
	ListByTripID(ctx context.Context, tripID string) ([]db_models.Marker, error)
	Delete(ctx context.Context, id string) error
}

type markerRepository struct {
	db *gorm.DB
}

func NewMarkerRepository(db *gorm.DB) MarkerRepository {
	return &markerRepository{
		db: db,
	}
}

func (m *markerRepository) Insert(ctx context.Context, marker *db_models.Marker) error {
	return m.db.WithContext(ctx).Create(marker).Error
}

func (m *markerRepository) FindByID(ctx context.Context, id string) (*db_models.Marker, error) {
	var marker db_models.Marker
	err := m.db.WithContext(ctx).First(&marker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &marker, nil
}

func (m *markerRepository) ListByTripID(ctx context.Context, tripID string) ([]db_models.Marker, error) {
	var markers []db_models.Marker
	err := m.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&markers).Error
	return markers, err
}

func (m *markerRepository) Delete(ctx context.Context, id string) error {
	return m.db.WithContext(ctx).Delete(&db_models.Marker{}, "id = ?", id).Error
}
