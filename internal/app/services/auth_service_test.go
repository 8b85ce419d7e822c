package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/auth"
)

type fakeUserAccountStore struct {
	users      map[string]*models.User
	nextID     int64
	lastLogins []int64
}

func newFakeUserAccountStore() *fakeUserAccountStore {
	return &fakeUserAccountStore{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserAccountStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if _, ok := f.users[user.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return user.ID, nil
}

func (f *fakeUserAccountStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserAccountStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserAccountStore) UpdateLastLogin(_ context.Context, userID int64) error {
	f.lastLogins = append(f.lastLogins, userID)
	return nil
}

type fakeProfileProvisioner struct {
	profiles map[int64]*models.Profile
	nextID   int64
}

func newFakeProfileProvisioner() *fakeProfileProvisioner {
	return &fakeProfileProvisioner{profiles: make(map[int64]*models.Profile), nextID: 1}
}

func (f *fakeProfileProvisioner) CreateProfile(_ context.Context, profile *models.Profile) (int64, error) {
	if _, ok := f.profiles[profile.UserID]; ok {
		return 0, apperrors.ErrProfileAlreadyExists
	}
	profile.ID = f.nextID
	f.nextID++
	f.profiles[profile.UserID] = profile
	return profile.ID, nil
}

func (f *fakeProfileProvisioner) GetProfileByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

type authFixture struct {
	svc      AuthService
	users    *fakeUserAccountStore
	profiles *fakeProfileProvisioner
}

func newAuthFixture() *authFixture {
	users := newFakeUserAccountStore()
	profiles := newFakeProfileProvisioner()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})

	return &authFixture{
		svc:      NewAuthService(users, profiles, jwtService, zerolog.Nop()),
		users:    users,
		profiles: profiles,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and signs in", func(t *testing.T) {
		fx := newAuthFixture()

		resp, err := fx.svc.Register(ctx, dto.RegisterRequest{
			Email:    "mentor@example.com",
			Password: "password123",
			Role:     models.RoleMentor,
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if resp.Token.AccessToken == "" {
			t.Error("AccessToken is empty")
		}
		if resp.User.Role != string(models.RoleMentor) {
			t.Errorf("User.Role = %s, want %s", resp.User.Role, models.RoleMentor)
		}

		stored := fx.users.users["mentor@example.com"]
		if stored == nil {
			t.Fatal("user was not stored")
		}
		if stored.Password == "password123" {
			t.Error("password was stored in plain text")
		}
		if !auth.CheckPassword(stored.Password, "password123") {
			t.Error("stored hash does not verify against the password")
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		fx := newAuthFixture()
		req := dto.RegisterRequest{Email: "taken@example.com", Password: "password123", Role: models.RoleMentee}

		if _, err := fx.svc.Register(ctx, req); err != nil {
			t.Fatalf("first Register() error = %v", err)
		}
		_, err := fx.svc.Register(ctx, req)
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("second Register() error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(fx *authFixture) {
		t.Helper()
		_, err := fx.svc.Register(ctx, dto.RegisterRequest{
			Email:    "mentee@example.com",
			Password: "password123",
			Role:     models.RoleMentee,
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	t.Run("valid credentials sign in and record the login", func(t *testing.T) {
		fx := newAuthFixture()
		register(fx)

		resp, err := fx.svc.Login(ctx, dto.LoginRequest{Email: "mentee@example.com", Password: "password123"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if resp.Token.AccessToken == "" {
			t.Error("AccessToken is empty")
		}
		if len(fx.users.lastLogins) != 1 {
			t.Errorf("last login records = %d, want 1", len(fx.users.lastLogins))
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := newAuthFixture()
		register(fx)

		_, err := fx.svc.Login(ctx, dto.LoginRequest{Email: "mentee@example.com", Password: "wrong-password"})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		fx := newAuthFixture()

		_, err := fx.svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestGoogleAuth(t *testing.T) {
	ctx := context.Background()

	req := dto.GoogleAuthRequest{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		GooglePhotoURL: "https://photos.example.com/jane.png",
		Role:           models.RoleMentor,
	}

	t.Run("first sign-in provisions a complete profile", func(t *testing.T) {
		fx := newAuthFixture()

		resp, err := fx.svc.GoogleAuth(ctx, req)
		if err != nil {
			t.Fatalf("GoogleAuth() error = %v", err)
		}
		if resp.User.Name != "Jane Doe" {
			t.Errorf("User.Name = %q, want %q", resp.User.Name, "Jane Doe")
		}

		user := fx.users.users["jane@example.com"]
		if user == nil {
			t.Fatal("user was not provisioned")
		}
		profile := fx.profiles.profiles[user.ID]
		if profile == nil {
			t.Fatal("profile was not provisioned")
		}
		if !profile.IsComplete {
			t.Error("IsComplete = false, want provisioned profile to be complete")
		}
		if profile.AvatarURL != req.GooglePhotoURL {
			t.Errorf("AvatarURL = %q, want %q", profile.AvatarURL, req.GooglePhotoURL)
		}
	})

	t.Run("missing photo falls back to the default avatar", func(t *testing.T) {
		fx := newAuthFixture()
		bare := req
		bare.GooglePhotoURL = ""

		if _, err := fx.svc.GoogleAuth(ctx, bare); err != nil {
			t.Fatalf("GoogleAuth() error = %v", err)
		}
		profile := fx.profiles.profiles[fx.users.users["jane@example.com"].ID]
		if profile.AvatarURL != models.DefaultAvatarURL {
			t.Errorf("AvatarURL = %q, want default avatar", profile.AvatarURL)
		}
	})

	t.Run("repeat sign-in reuses the account", func(t *testing.T) {
		fx := newAuthFixture()

		if _, err := fx.svc.GoogleAuth(ctx, req); err != nil {
			t.Fatalf("first GoogleAuth() error = %v", err)
		}
		if _, err := fx.svc.GoogleAuth(ctx, req); err != nil {
			t.Fatalf("second GoogleAuth() error = %v", err)
		}
		if len(fx.users.users) != 1 {
			t.Errorf("accounts = %d, want 1", len(fx.users.users))
		}
		if len(fx.profiles.profiles) != 1 {
			t.Errorf("profiles = %d, want 1", len(fx.profiles.profiles))
		}
		if len(fx.users.lastLogins) != 1 {
			t.Errorf("last login records = %d, want 1", len(fx.users.lastLogins))
		}
	})
}
