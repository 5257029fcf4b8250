package main

import (
	"github.com/sportsmatch/backend/internal/config"
	"github.com/sportsmatch/backend/internal/handlers"
	"github.com/sportsmatch/backend/internal/models"
	"github.com/sportsmatch/backend/internal/services"
	"github.com/sportsmatch/backend/internal/utils"
	"github.com/sportsmatch/backend/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	schedulerService *services.SchedulerService
	taskQueue        services.TaskQueue
	worker           *services.Worker

	authHandler         *handlers.AuthHandler
	gameHandler         *handlers.GameHandler
	profileHandler      *handlers.ProfileHandler
	notificationHandler *handlers.NotificationHandler
	messageHandler      *handlers.MessageHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	// Initialize task queue (uses Redis if enabled, otherwise sync mode)
	taskQueue := services.InitTaskQueue(cfg)
	emailService := services.NewEmailService(&cfg.SMTP, taskQueue)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(emailService.Deliver)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(emailService.Deliver)
			worker.Start()
		}
	}

	// Start the game status sweeper
	schedulerService := services.NewSchedulerService(db)
	schedulerService.StartScheduler()

	// Wire services and handlers
	notificationService := services.NewNotificationService(db)
	authService := services.NewAuthService(db, &cfg.JWT, emailService)
	gameService := services.NewGameService(db, notificationService, emailService)
	profileService := services.NewProfileService(db)
	messageService := services.NewMessageService(db)

	return &appServices{
		schedulerService:    schedulerService,
		taskQueue:           taskQueue,
		worker:              worker,
		authHandler:         handlers.NewAuthHandler(authService),
		gameHandler:         handlers.NewGameHandler(gameService),
		profileHandler:      handlers.NewProfileHandler(profileService),
		notificationHandler: handlers.NewNotificationHandler(notificationService),
		messageHandler:      handlers.NewMessageHandler(messageService),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.schedulerService.StopScheduler()
	logger.Info().Msg("All schedulers stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}
