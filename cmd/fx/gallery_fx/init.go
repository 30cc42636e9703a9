package gallery_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripjournal/internal/api/controllers"
	"tripjournal/internal/repositories"
	"tripjournal/internal/services"
)

var Module = fx.Provide(
	providePhotoRepo,
	provideGalleryService,
	controllers.NewGalleryController)

func providePhotoRepo(db *gorm.DB) repositories.PhotoRepository {
	return repositories.NewPhotoRepository(db)
}

func provideGalleryService(photoRepo repositories.PhotoRepository, tripRepo repositories.TripRepository) services.GalleryServiceInterface {
	return services.NewGalleryService(photoRepo, tripRepo, os.Getenv("IMAGES_DIR"))
}
