package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripjournal/internal/api/controllers"
	"tripjournal/internal/repositories"
	"tripjournal/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	controllers.NewTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, accountRepo repositories.AccountRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo, accountRepo)
}
