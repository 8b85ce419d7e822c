package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/auth"
)

// userAccountStore is the user persistence surface auth needs
type userAccountStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// profileProvisioner covers the minimal profile access auth touches
type profileProvisioner interface {
	CreateProfile(ctx context.Context, profile *models.Profile) (int64, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	GoogleAuth(ctx context.Context, req dto.GoogleAuthRequest) (*dto.AuthResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo    userAccountStore
	profileRepo profileProvisioner
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo userAccountStore,
	profileRepo profileProvisioner,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a new user account and signs it in
func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email availability: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     req.Role,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.buildAuthResponse(ctx, user)
}

// Login authenticates a user with email and password
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record login time")
	}

	return s.buildAuthResponse(ctx, user)
}

// GoogleAuth signs a user in with a verified Google identity, provisioning the
// account and a minimal profile on first sight
func (s *authServiceImpl) GoogleAuth(ctx context.Context, req dto.GoogleAuthRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	if user == nil {
		// Account does not exist yet. The random credential keeps password
		// login closed until the user sets one.
		hashedPassword, err := auth.HashPassword(uuid.New().String())
		if err != nil {
			return nil, fmt.Errorf("error hashing generated password: %w", err)
		}

		user = &models.User{
			Email:    req.Email,
			Password: hashedPassword,
			Role:     req.Role,
		}
		if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}

		avatarURL := req.GooglePhotoURL
		if avatarURL == "" {
			avatarURL = models.DefaultAvatarURL
		}
		// Google supplies a verified name, so the profile starts out complete
		// and the user is visible to discovery right away
		profile := &models.Profile{
			UserID:     user.ID,
			Name:       req.Name,
			AvatarURL:  avatarURL,
			IsComplete: true,
		}
		if _, err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
			return nil, err
		}

		s.logger.Info().Int64("userID", user.ID).Msg("User provisioned via Google sign-in")
	} else if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record login time")
	}

	return s.buildAuthResponse(ctx, user)
}

// buildAuthResponse issues a token pair and assembles the signed-in user view
func (s *authServiceImpl) buildAuthResponse(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	userResp := dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}

	profile, err := s.profileRepo.GetProfileByUserID(ctx, user.ID)
	if err == nil {
		userResp.Name = profile.Name
		userResp.AvatarURL = profile.AvatarURL
	} else if !errors.Is(err, apperrors.ErrProfileNotFound) {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             int64(expiresIn),
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: int64(refreshExpiresIn),
		},
		User: userResp,
	}, nil
}
