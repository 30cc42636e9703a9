package repositories

import (
	"context"

	"gorm.io/gorm"
	"tripjournal/internal/models/db_models"
)

type PhotoRepository interface {
	Insert(ctx context.Context, photo *db_models.Photo) error
	ListByTripID(ctx context.Context, tripID string) ([]db_models.Photo, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{
		db: db,
	}
}

func (p *photoRepository) Insert(ctx context.Context, photo *db_models.Photo) error {
	return p.db.WithContext(ctx).Create(photo).Error
}

func (p *photoRepository) ListByTripID(ctx context.Context, tripID string) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := p.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&photos).Error
	return photos, err
}
