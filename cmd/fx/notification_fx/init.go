package notification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripjournal/internal/api/controllers"
	"tripjournal/internal/repositories"
	"tripjournal/internal/services"
	"tripjournal/pkg/ws"
)

var Module = fx.Provide(
	ws.NewHub,
	provideNotificationRepo,
	provideNotificationService,
	controllers.NewNotificationController)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(notificationRepo repositories.NotificationRepository, hub *ws.Hub) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo, hub)
}
