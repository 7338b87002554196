package api

import (
	"net/http"

	"taskhive-backend/internal/auth/delivery"
	authUsecase "taskhive-backend/internal/auth/usecase"
	taskDelivery "taskhive-backend/internal/task/delivery"
	taskUsecase "taskhive-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecase.TaskUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	authRequired := delivery.AuthMiddleware(authUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// User routes
	users := r.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.GET("/me", authRequired, authHandler.Me)
		users.PATCH("/me", authRequired, authHandler.UpdateMe)
		users.DELETE("/me", authRequired, authHandler.DeleteMe)
		users.POST("/logout", authRequired, authHandler.Logout)
		users.POST("/logoutAll", authRequired, authHandler.LogoutAll)
		users.POST("/me/avatar", authRequired, authHandler.UploadAvatar)
		users.DELETE("/me/avatar", authRequired, authHandler.DeleteAvatar)
		users.GET("/:id/avatar", authHandler.GetAvatar) // public
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(authRequired)
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.GetTasks)
		tasks.GET("/:id", taskHandler.GetTaskByID)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
