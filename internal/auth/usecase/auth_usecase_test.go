package usecase

import (
	"testing"
	"time"

	authdomain "taskhive-backend/internal/auth/domain"
	authdto "taskhive-backend/internal/auth/dto"
	"taskhive-backend/internal/auth/repository"
	"taskhive-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[string]*authdomain.User
	tokens map[string]*authdomain.SessionToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*authdomain.User),
		tokens: make(map[string]*authdomain.SessionToken),
	}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SaveSessionToken(token *authdomain.SessionToken) error {
	token.CreatedAt = time.Now()
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeUserRepo) FindSessionToken(token string) (*authdomain.SessionToken, error) {
	stored, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeUserRepo) DeleteSessionToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteSessionTokensByUser(userID string) error {
	for token, stored := range r.tokens {
		if stored.UserID == userID {
			delete(r.tokens, token)
		}
	}
	return nil
}

// fakeNotifier records calls instead of sending anything.
type fakeNotifier struct {
	welcome chan string
	removal chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		welcome: make(chan string, 1),
		removal: make(chan string, 1),
	}
}

func (n *fakeNotifier) SendWelcomeEmail(email, name string) error {
	n.welcome <- email
	return nil
}

func (n *fakeNotifier) SendAccountRemovalEmail(email, name string) error {
	n.removal <- email
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func register(t *testing.T, uc AuthUsecase, email string) *authdto.TokenResponse {
	t.Helper()
	resp, err := uc.Register(&authdto.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "s3cr3tpass",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, nil, testConfig())

	resp := register(t, uc, "alice@example.com")

	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, "s3cr3tpass", resp.User.Password)
	assert.True(t, repository.CheckPasswordHash("s3cr3tpass", resp.User.Password))

	// The minted token is immediately usable.
	user, err := uc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), nil, testConfig())

	register(t, uc, "alice@example.com")

	_, err := uc.Register(&authdto.RegisterRequest{
		Name:     "Imposter",
		Email:    "alice@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, authdomain.ErrEmailTaken)
}

func TestRegisterSendsWelcomeEmail(t *testing.T) {
	notifier := newFakeNotifier()
	uc := NewAuthUsecase(newFakeUserRepo(), notifier, testConfig())

	register(t, uc, "alice@example.com")

	select {
	case email := <-notifier.welcome:
		assert.Equal(t, "alice@example.com", email)
	case <-time.After(time.Second):
		t.Fatal("welcome email was never dispatched")
	}
}

func TestLogin(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), nil, testConfig())
	register(t, uc, "alice@example.com")

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "alice@example.com", "s3cr3tpass", nil},
		{"wrong password", "alice@example.com", "nope", authdomain.ErrInvalidCredentials},
		{"unknown email", "bob@example.com", "s3cr3tpass", authdomain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Login(&authdto.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), nil, testConfig())
	resp := register(t, uc, "alice@example.com")

	require.NoError(t, uc.Logout(resp.Token))

	// The JWT still verifies cryptographically but is no longer active.
	_, err := uc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestLogoutAllIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, nil, testConfig())
	resp := register(t, uc, "alice@example.com")

	login, err := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "s3cr3tpass"})
	require.NoError(t, err)
	require.NotEqual(t, resp.Token, login.Token)

	require.NoError(t, uc.LogoutAll(resp.User.ID))
	require.NoError(t, uc.LogoutAll(resp.User.ID))

	_, err = uc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
	_, err = uc.ValidateToken(login.Token)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestValidateTokenRejectsForgeries(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), nil, testConfig())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := uc.ValidateToken(token)
		assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
	}
}

func TestUpdateProfile(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), nil, testConfig())
	resp := register(t, uc, "alice@example.com")

	name := "Alice"
	age := 30
	require.NoError(t, uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Name: &name, Age: &age}))
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, 30, resp.User.Age)

	negative := -1
	err := uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Age: &negative})
	assert.Error(t, err)

	// Changing password re-hashes and the new one logs in.
	password := "newpassword"
	require.NoError(t, uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Password: &password}))
	_, err = uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), nil, testConfig())
	alice := register(t, uc, "alice@example.com")
	register(t, uc, "bob@example.com")

	taken := "bob@example.com"
	err := uc.UpdateProfile(alice.User, &authdto.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, authdomain.ErrEmailTaken)
}

func TestDeleteAccountCascades(t *testing.T) {
	repo := newFakeUserRepo()
	notifier := newFakeNotifier()
	uc := NewAuthUsecase(repo, notifier, testConfig())

	var cleanedUp string
	uc.SetTaskCleanup(func(userID string) error {
		cleanedUp = userID
		return nil
	})

	resp := register(t, uc, "alice@example.com")
	require.NoError(t, uc.DeleteAccount(resp.User))

	assert.Equal(t, resp.User.ID, cleanedUp)

	found, err := repo.FindByID(resp.User.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = uc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)

	select {
	case email := <-notifier.removal:
		assert.Equal(t, "alice@example.com", email)
	case <-time.After(time.Second):
		t.Fatal("account-removal email was never dispatched")
	}
}

func TestAvatarLifecycle(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), nil, testConfig())
	resp := register(t, uc, "alice@example.com")

	// No avatar yet.
	_, err := uc.GetAvatar(resp.User.ID)
	assert.ErrorIs(t, err, authdomain.ErrNotFound)

	require.NoError(t, uc.SetAvatar(resp.User, []byte{0x89, 0x50, 0x4e, 0x47}))
	avatar, err := uc.GetAvatar(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, avatar)

	require.NoError(t, uc.ClearAvatar(resp.User))
	_, err = uc.GetAvatar(resp.User.ID)
	assert.ErrorIs(t, err, authdomain.ErrNotFound)

	// Unknown user id is indistinguishable from a missing avatar.
	_, err = uc.GetAvatar("no-such-user")
	assert.ErrorIs(t, err, authdomain.ErrNotFound)
}
