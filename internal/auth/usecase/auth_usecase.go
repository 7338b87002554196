package usecase

import (
	"errors"
	"log"
	"time"

	authdomain "taskhive-backend/internal/auth/domain"
	authdto "taskhive-backend/internal/auth/dto"
	"taskhive-backend/internal/auth/repository"
	"taskhive-backend/internal/notification"
	"taskhive-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo    repository.UserRepository
	notifier    notification.Notifier
	config      *config.Config
	taskCleanup func(userID string) error
}

// NewAuthUsecase creates a new instance of authUsecase. notifier may be nil,
// in which case account emails are skipped.
func NewAuthUsecase(userRepo repository.UserRepository, notifier notification.Notifier, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		notifier: notifier,
		config:   cfg,
	}
}

func (u *authUsecase) SetTaskCleanup(fn func(userID string) error) {
	u.taskCleanup = fn
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Age:      req.Age,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	u.dispatchEmail("welcome", user.Email, user.Name, func() error {
		return u.notifier.SendWelcomeEmail(user.Email, user.Name)
	})

	return resp, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password report identically so callers
	// cannot enumerate accounts.
	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}

	return u.issueToken(user)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, authdomain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authdomain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, authdomain.ErrInvalidToken
	}

	// A structurally valid token is stale once removed from the active
	// list (logout / logoutAll).
	stored, err := u.userRepo.FindSessionToken(tokenString)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.UserID != userID {
		return nil, authdomain.ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, authdomain.ErrInvalidToken
	}

	return user, nil
}

func (u *authUsecase) Logout(token string) error {
	return u.userRepo.DeleteSessionToken(token)
}

func (u *authUsecase) LogoutAll(userID string) error {
	return u.userRepo.DeleteSessionTokensByUser(userID)
}

func (u *authUsecase) UpdateProfile(user *authdomain.User, upd *authdto.UpdateProfileRequest) error {
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Age != nil {
		if *upd.Age < 0 {
			return errors.New("age must be a non-negative number")
		}
		user.Age = *upd.Age
	}
	if upd.Email != nil && *upd.Email != user.Email {
		existing, err := u.userRepo.FindByEmail(*upd.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return authdomain.ErrEmailTaken
		}
		user.Email = *upd.Email
	}
	if upd.Password != nil {
		hashed, err := repository.HashPassword(*upd.Password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	return u.userRepo.Update(user)
}

func (u *authUsecase) DeleteAccount(user *authdomain.User) error {
	// Explicit cascade: tasks first, then sessions, then the user row.
	if u.taskCleanup != nil {
		if err := u.taskCleanup(user.ID); err != nil {
			return err
		}
	}

	if err := u.userRepo.DeleteSessionTokensByUser(user.ID); err != nil {
		return err
	}

	if err := u.userRepo.Delete(user.ID); err != nil {
		return err
	}

	u.dispatchEmail("account removal", user.Email, user.Name, func() error {
		return u.notifier.SendAccountRemovalEmail(user.Email, user.Name)
	})

	return nil
}

func (u *authUsecase) SetAvatar(user *authdomain.User, avatar []byte) error {
	user.Avatar = avatar
	return u.userRepo.Update(user)
}

func (u *authUsecase) ClearAvatar(user *authdomain.User) error {
	user.Avatar = nil
	return u.userRepo.Update(user)
}

func (u *authUsecase) GetAvatar(userID string) ([]byte, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || len(user.Avatar) == 0 {
		return nil, authdomain.ErrNotFound
	}
	return user.Avatar, nil
}

// dispatchEmail sends in the background; the result never affects the request.
func (u *authUsecase) dispatchEmail(kind, email, name string, send func() error) {
	if u.notifier == nil {
		return
	}
	go func() {
		if err := send(); err != nil {
			log.Printf("[WARN] Failed to send %s email to %s: %v", kind, email, err)
		}
	}()
}

func (u *authUsecase) issueToken(user *authdomain.User) (*authdto.TokenResponse, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"token_id": uuid.New().String(),
		"exp":      time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	session := &authdomain.SessionToken{
		Token:  signed,
		UserID: user.ID,
	}
	if err := u.userRepo.SaveSessionToken(session); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		User:  user,
		Token: signed,
	}, nil
}
