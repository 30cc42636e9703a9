package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripjournal/cmd/fx/account_fx"
	"tripjournal/cmd/fx/assistant_fx"
	"tripjournal/cmd/fx/db_fx"
	"tripjournal/cmd/fx/friend_fx"
	"tripjournal/cmd/fx/gallery_fx"
	"tripjournal/cmd/fx/marker_fx"
	"tripjournal/cmd/fx/notification_fx"
	"tripjournal/cmd/fx/trip_fx"
	"tripjournal/internal/api/controllers"
	"tripjournal/internal/infra"
	"tripjournal/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		marker_fx.Module,
		friend_fx.Module,
		notification_fx.Module,
		gallery_fx.Module,
		assistant_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "3000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	markerController *controllers.MarkerController,
	friendController *controllers.FriendController,
	notificationController *controllers.NotificationController,
	galleryController *controllers.GalleryController,
	assistantController *controllers.AssistantController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		tripController,
		markerController,
		friendController,
		notificationController,
		galleryController,
		assistantController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	markerController *controllers.MarkerController,
	friendController *controllers.FriendController,
	notificationController *controllers.NotificationController,
	galleryController *controllers.GalleryController,
	assistantController *controllers.AssistantController) {

	imagesDir := os.Getenv("IMAGES_DIR")
	if imagesDir == "" {
		imagesDir = "images"
	}
	r.Static("/images", imagesDir)

	usersGroup := r.Group("/users")
	usersGroup.POST("/register", accountController.Register)
	usersGroup.POST("/login", accountController.Login)

	authUsers := r.Group("/users", middleware.JWTAuthMiddleware())
	authUsers.GET("", accountController.ListUsers)
	authUsers.GET("/:id", accountController.GetUser)
	authUsers.DELETE("/:id", accountController.DeleteUser)
	authUsers.POST("/:id/trips", tripController.CreateTrip)
	authUsers.GET("/:id/trips", tripController.ListTrips)
	authUsers.DELETE("/:id/trips/:tripId", tripController.DeleteTrip)

	tripsGroup := r.Group("/trips", middleware.JWTAuthMiddleware())
	tripsGroup.POST("/:tripId/markers", markerController.CreateMarker)
	tripsGroup.GET("/:tripId/markers", markerController.ListMarkers)
	tripsGroup.POST("/:tripId/images", galleryController.UploadImage)
	tripsGroup.GET("/:tripId/images", galleryController.ListImages)

	markersGroup := r.Group("/markers", middleware.JWTAuthMiddleware())
	markersGroup.DELETE("/:markerId", markerController.DeleteMarker)

	friendsGroup := r.Group("/friends", middleware.JWTAuthMiddleware())
	friendsGroup.POST("/requests", friendController.SendRequest)
	friendsGroup.POST("/requests/:requestId/accept", friendController.AcceptRequest)
	friendsGroup.POST("/requests/:requestId/decline", friendController.DeclineRequest)
	friendsGroup.GET("", friendController.ListFriends)

	notificationsGroup := r.Group("/notifications", middleware.JWTAuthMiddleware())
	notificationsGroup.GET("", notificationController.ListNotifications)
	notificationsGroup.POST("/:notificationId/read", notificationController.MarkRead)

	r.GET("/ws/notifications", middleware.JWTAuthMiddleware(), notificationController.Stream)

	assistantGroup := r.Group("/assistant", middleware.JWTAuthMiddleware())
	assistantGroup.POST("/ask", assistantController.Ask)
}
