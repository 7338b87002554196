package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	authdomain "taskhive-backend/internal/auth/domain"
	authdto "taskhive-backend/internal/auth/dto"
	"taskhive-backend/internal/auth/usecase"
	"taskhive-backend/pkg/imaging"

	"github.com/gin-gonic/gin"
)

// profileUpdateFields is the allow-list for PATCH /users/me. A request body
// containing any other key is rejected whole, before anything is applied.
var profileUpdateFields = map[string]bool{
	"name":     true,
	"age":      true,
	"email":    true,
	"password": true,
}

// AuthHandler handles user account HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

func currentUser(c *gin.Context) *authdomain.User {
	return c.MustGet("user").(*authdomain.User)
}

// Register creates a new account
// POST /users
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login resolves credentials and mints a session token
// POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user
// GET /users/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// UpdateMe applies an allow-listed partial update to the authenticated user
// PATCH /users/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	user := currentUser(c)

	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var raw map[string]json.RawMessage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	for key := range raw {
		if !profileUpdateFields[key] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates!"})
			return
		}
	}

	var req authdto.UpdateProfileRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.authUsecase.UpdateProfile(user, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe removes the account, cascading tasks and sessions
// DELETE /users/me
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	user := currentUser(c)

	if err := h.authUsecase.DeleteAccount(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout removes the session token used for this request
// POST /users/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("token")

	if err := h.authUsecase.Logout(token); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// LogoutAll clears the user's entire active-token list
// POST /users/logoutAll
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	user := currentUser(c)

	if err := h.authUsecase.LogoutAll(user.ID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// UploadAvatar accepts a multipart image, normalizes it to a 250x250 PNG
// and stores it on the user
// POST /users/me/avatar
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	user := currentUser(c)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}

	if err := imaging.ValidateUpload(fileHeader.Filename, fileHeader.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	normalized, err := imaging.Normalize(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.SetAvatar(user, normalized); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// DeleteAvatar clears the user's avatar
// DELETE /users/me/avatar
func (h *AuthHandler) DeleteAvatar(c *gin.Context) {
	user := currentUser(c)

	if err := h.authUsecase.ClearAvatar(user); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// GetAvatar serves a user's avatar publicly as PNG bytes
// GET /users/:id/avatar
func (h *AuthHandler) GetAvatar(c *gin.Context) {
	avatar, err := h.authUsecase.GetAvatar(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.Data(http.StatusOK, "image/png", avatar)
}
