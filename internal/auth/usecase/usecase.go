package usecase

import (
	authdomain "taskhive-backend/internal/auth/domain"
	authdto "taskhive-backend/internal/auth/dto"
)

// AuthUsecase defines the account and session operations
type AuthUsecase interface {
	// Register creates a user, mints a session token and sends the welcome email
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login resolves credentials and mints a new session token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// ValidateToken verifies a bearer token and resolves it to a user.
	// The token must verify as a JWT and still be in the active-token list.
	ValidateToken(token string) (*authdomain.User, error)

	// Logout removes a single token from the active list
	Logout(token string) error

	// LogoutAll clears the user's entire active-token list
	LogoutAll(userID string) error

	// UpdateProfile applies the non-nil fields of the update to the user
	UpdateProfile(user *authdomain.User, upd *authdto.UpdateProfileRequest) error

	// DeleteAccount removes the user, its tasks and its session tokens,
	// then sends the account-removal email
	DeleteAccount(user *authdomain.User) error

	// SetAvatar stores a normalized avatar for the user
	SetAvatar(user *authdomain.User, avatar []byte) error

	// ClearAvatar removes the user's avatar
	ClearAvatar(user *authdomain.User) error

	// GetAvatar returns the stored avatar bytes for a user id
	GetAvatar(userID string) ([]byte, error)

	// SetTaskCleanup registers the cascade that removes a deleted user's tasks
	SetTaskCleanup(fn func(userID string) error)
}
