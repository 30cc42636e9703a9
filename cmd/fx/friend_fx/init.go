package friend_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripjournal/internal/api/controllers"
	"tripjournal/internal/repositories"
	"tripjournal/internal/services"
)

var Module = fx.Provide(
	provideFriendRepo,
	provideFriendService,
	controllers.NewFriendController)

func provideFriendRepo(db *gorm.DB) repositories.FriendRepository {
	return repositories.NewFriendRepository(db)
}

func provideFriendService(
	friendRepo repositories.FriendRepository,
	accountRepo repositories.AccountRepository,
	notificationService services.NotificationServiceInterface,
) services.FriendServiceInterface {
	return services.NewFriendService(friendRepo, accountRepo, notificationService)
}
