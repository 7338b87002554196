package repository

import authdomain "taskhive-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email; returns (nil, nil) when absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by id; returns (nil, nil) when absent
	FindByID(id string) (*authdomain.User, error)

	// Update persists changes to an existing user
	Update(user *authdomain.User) error

	// Delete removes the user row
	Delete(id string) error

	// SaveSessionToken appends a token to the user's active list
	SaveSessionToken(token *authdomain.SessionToken) error

	// FindSessionToken looks up an active token; returns (nil, nil) when absent
	FindSessionToken(token string) (*authdomain.SessionToken, error)

	// DeleteSessionToken removes a single token from the active list
	DeleteSessionToken(token string) error

	// DeleteSessionTokensByUser clears the user's entire active list
	DeleteSessionTokensByUser(userID string) error
}
