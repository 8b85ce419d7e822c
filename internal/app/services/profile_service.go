package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/repositories"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/auth"
)

// ProfileService defines the interface for profile operations
type ProfileService interface {
	CreateProfile(ctx context.Context, userID int64, req dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeleteProfile(ctx context.Context, userID int64) error
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	profileRepo *repositories.ProfileRepository
	vocabRepo   *repositories.VocabularyRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	profileRepo *repositories.ProfileRepository,
	vocabRepo *repositories.VocabularyRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
		vocabRepo:   vocabRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CreateProfile creates the user's profile with its skill and interest
// associations. Unknown vocabulary names are added on the fly.
func (s *profileServiceImpl) CreateProfile(ctx context.Context, userID int64, req dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	avatarURL := req.AvatarURL
	if avatarURL == "" {
		avatarURL = models.DefaultAvatarURL
	}

	skills, err := s.vocabRepo.FindOrCreateSkills(ctx, req.Skills)
	if err != nil {
		return nil, err
	}
	interests, err := s.vocabRepo.FindOrCreateInterests(ctx, req.Interests)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:     userID,
		Name:       strings.TrimSpace(req.Name),
		Bio:        req.Bio,
		AvatarURL:  avatarURL,
		IsComplete: isProfileComplete(req.Name, skills, interests),
	}

	if _, err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := s.vocabRepo.ReplaceProfileSkills(ctx, profile.ID, skillIDsOf(skills)); err != nil {
		return nil, err
	}
	if err := s.vocabRepo.ReplaceProfileInterests(ctx, profile.ID, interestIDsOf(interests)); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Int64("profileID", profile.ID).Msg("Profile created")

	return s.GetProfile(ctx, userID)
}

// GetProfile retrieves the user's own profile
func (s *profileServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:         profile.ID,
		UserID:     profile.UserID,
		Name:       profile.Name,
		Bio:        profile.Bio,
		AvatarURL:  profile.AvatarURL,
		IsComplete: profile.IsComplete,
		Skills:     skillNames(profile.Skills),
		Interests:  interestNames(profile.Interests),
	}, nil
}

// UpdateProfile applies a partial update to the user's profile. Nil skill or
// interest lists leave the existing associations as they are.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) != "" {
		profile.Name = strings.TrimSpace(req.Name)
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = req.AvatarURL
	}

	skills := profile.Skills
	if req.Skills != nil {
		skills, err = s.vocabRepo.FindOrCreateSkills(ctx, *req.Skills)
		if err != nil {
			return nil, err
		}
		if err := s.vocabRepo.ReplaceProfileSkills(ctx, profile.ID, skillIDsOf(skills)); err != nil {
			return nil, err
		}
	}

	interests := profile.Interests
	if req.Interests != nil {
		interests, err = s.vocabRepo.FindOrCreateInterests(ctx, *req.Interests)
		if err != nil {
			return nil, err
		}
		if err := s.vocabRepo.ReplaceProfileInterests(ctx, profile.ID, interestIDsOf(interests)); err != nil {
			return nil, err
		}
	}

	profile.IsComplete = isProfileComplete(profile.Name, skills, interests)

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrValidationFailed)
		}
		hashedPassword, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

// DeleteProfile removes the user's profile. The skill and interest
// associations go with the row through the cascading foreign keys.
func (s *profileServiceImpl) DeleteProfile(ctx context.Context, userID int64) error {
	if err := s.profileRepo.DeleteProfile(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Profile removed")
	return nil
}

// isProfileComplete reports whether a profile carries enough signal to take
// part in discovery and matchmaking
func isProfileComplete(name string, skills []models.Skill, interests []models.Interest) bool {
	return strings.TrimSpace(name) != "" && len(skills) > 0 && len(interests) > 0
}

func skillIDsOf(skills []models.Skill) []int64 {
	ids := make([]int64, 0, len(skills))
	for _, s := range skills {
		ids = append(ids, s.ID)
	}
	return ids
}

func interestIDsOf(interests []models.Interest) []int64 {
	ids := make([]int64, 0, len(interests))
	for _, i := range interests {
		ids = append(ids, i.ID)
	}
	return ids
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func interestNames(interests []models.Interest) []string {
	names := make([]string, 0, len(interests))
	for _, i := range interests {
		names = append(names, i.Name)
	}
	return names
}

// placeholderName stands in when a participant has no profile name yet
const placeholderName = "Unnamed User"

// publicProfileOf projects a profile into the shape shown to other users.
// Absent fields fall back to placeholders so listings never render blank.
func publicProfileOf(profile *models.Profile) dto.PublicProfile {
	if profile == nil {
		return dto.PublicProfile{Name: placeholderName}
	}
	name := profile.Name
	if strings.TrimSpace(name) == "" {
		name = placeholderName
	}
	return dto.PublicProfile{
		Name:      name,
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
		Skills:    skillNames(profile.Skills),
		Interests: interestNames(profile.Interests),
	}
}
