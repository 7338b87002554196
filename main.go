package main

import (
	"log"

	api "taskhive-backend/cmd/api"
	authdomain "taskhive-backend/internal/auth/domain"
	authRepo "taskhive-backend/internal/auth/repository"
	authUsecase "taskhive-backend/internal/auth/usecase"
	"taskhive-backend/internal/notification"
	taskdomain "taskhive-backend/internal/task/domain"
	taskRepo "taskhive-backend/internal/task/repository"
	taskUsecase "taskhive-backend/internal/task/usecase"
	"taskhive-backend/pkg/config"
	"taskhive-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.SessionToken{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize notifier; account emails are disabled without an API key
	var notifier notification.Notifier
	if cfg.SendGridAPIKey != "" {
		notifier = notification.NewService(cfg.SendGridAPIKey, cfg.EmailFrom)
	} else {
		log.Printf("[WARN] SENDGRID_API_KEY not set, account emails disabled")
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, notifier, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Deleting an account cascades into the user's tasks
	authUsecaseInstance.SetTaskCleanup(taskUsecaseInstance.DeleteAllForUser)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
