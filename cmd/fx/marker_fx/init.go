package marker_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripjournal/internal/api/controllers"
	"tripjournal/internal/repositories"
	"tripjournal/internal/services"
)

var Module = fx.Provide(
	provideMarkerRepo,
	provideMarkerService,
	controllers.NewMarkerController)

func provideMarkerRepo(db *gorm.DB) repositories.MarkerRepository {
	return repositories.NewMarkerRepository(db)
}

func provideMarkerService(markerRepo repositories.MarkerRepository, tripRepo repositories.TripRepository) services.MarkerServiceInterface {
	return services.NewMarkerService(markerRepo, tripRepo)
}
