package dto

import authdomain "taskhive-backend/internal/auth/domain"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Age      int    `json:"age" binding:"omitempty,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest enumerates the mutable profile fields. Each field is
// optional; only non-nil fields are applied. Keys outside this set are
// rejected at the delivery layer before binding.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type TokenResponse struct {
	User  *authdomain.User `json:"user"`
	Token string           `json:"token"`
}
