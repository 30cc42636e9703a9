package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tripjournal/internal/models/db_models"
	"tripjournal/internal/models/response_models"
	"tripjournal/internal/repositories"
	"tripjournal/pkg/utils"
)

type GalleryServiceInterface interface {
	// PrepareUpload validates ownership, creates the target directory and
	// returns the destination path for the incoming file.
	PrepareUpload(ctx context.Context, userID, tripID, originalName string) (string, error)
	RecordUpload(ctx context.Context, userID, tripID, fileName, path string) (*response_models.PhotoResponse, error)
	ListImages(ctx context.Context, userID, tripID string) ([]response_models.PhotoResponse, error)
}

type GalleryService struct {
	photoRepo repositories.PhotoRepository
	tripRepo  repositories.TripRepository
	baseDir   string
}

func NewGalleryService(photoRepo repositories.PhotoRepository, tripRepo repositories.TripRepository, baseDir string) GalleryServiceInterface {
	if baseDir == "" {
		baseDir = "images"
	}
	return &GalleryService{
		photoRepo: photoRepo,
		tripRepo:  tripRepo,
		baseDir:   baseDir,
	}
}

func (g *GalleryService) PrepareUpload(ctx context.Context, userID, tripID, originalName string) (string, error) {
	trip, err := g.tripRepo.FindByIDAndUserID(ctx, tripID, userID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if trip == nil {
		return "", utils.ErrNotTripOwner
	}

	dir := filepath.Join(g.baseDir, userID, tripID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	// Epoch prefix keeps names unique within the trip directory.
	name := fmt.Sprintf("%d-%s", utils.NowUnixSeconds(), filepath.Base(originalName))
	return filepath.Join(dir, name), nil
}

func (g *GalleryService) RecordUpload(ctx context.Context, userID, tripID, fileName, path string) (*response_models.PhotoResponse, error) {
	trip, err := g.tripRepo.FindByIDAndUserID(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrNotTripOwner
	}

	photo := &db_models.Photo{
		TripID:   trip.ID,
		FileName: fileName,
		Path:     path,
	}
	if err := g.photoRepo.Insert(ctx, photo); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PhotoResponse{
		ID:       photo.ID.String(),
		FileName: photo.FileName,
		URL:      "/" + filepath.ToSlash(photo.Path),
	}, nil
}

func (g *GalleryService) ListImages(ctx context.Context, userID, tripID string) ([]response_models.PhotoResponse, error) {
	trip, err := g.tripRepo.FindByIDAndUserID(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrNotTripOwner
	}

	photos, err := g.photoRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		out = append(out, response_models.PhotoResponse{
			ID:       photo.ID.String(),
			FileName: photo.FileName,
			URL:      "/" + filepath.ToSlash(photo.Path),
		})
	}
	return out, nil
}
