package delivery

import (
	"net/http"
	"strings"

	"taskhive-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates protected routes. It extracts the bearer token,
// resolves it to a user through the auth usecase and attaches (user, token)
// to the request context. Any failure aborts with 401 and an empty body.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		token := parts[1]
		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("token", token)
		c.Next()
	}
}
