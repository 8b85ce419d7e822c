package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/matching"
)

// candidateReader is the profile surface matchmaking needs
type candidateReader interface {
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	GetMatchCandidates(ctx context.Context, excludeUserID int64, role models.RoleType, skillIDs, interestIDs []int64) ([]*models.Profile, error)
}

// MatchmakingService defines the interface for ranked match suggestions
type MatchmakingService interface {
	GetMatches(ctx context.Context, userID int64, role models.RoleType) ([]dto.MatchResponse, error)
}

// matchmakingServiceImpl implements the MatchmakingService interface
type matchmakingServiceImpl struct {
	profileRepo candidateReader
	logger      zerolog.Logger
}

// NewMatchmakingService creates a new matchmaking service instance
func NewMatchmakingService(profileRepo candidateReader, logger zerolog.Logger) MatchmakingService {
	return &matchmakingServiceImpl{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetMatches ranks users of the complementary role by vocabulary overlap with
// the requesting user's profile and returns the top suggestions. A profile
// with no skills or interests yields an empty list, never an error; so does a
// role with no counterpart, since its candidate pool is empty.
func (s *matchmakingServiceImpl) GetMatches(ctx context.Context, userID int64, role models.RoleType) ([]dto.MatchResponse, error) {
	counterpart, ok := matching.CounterpartRole(role)
	if !ok {
		return []dto.MatchResponse{}, nil
	}

	profile, err := s.profileRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.ErrProfileNotFound, "Complete your profile to get match suggestions")
		}
		return nil, err
	}

	skillIDs := profile.SkillIDs()
	interestIDs := profile.InterestIDs()
	if len(skillIDs) == 0 && len(interestIDs) == 0 {
		return []dto.MatchResponse{}, nil
	}

	candidates, err := s.profileRepo.GetMatchCandidates(ctx, userID, counterpart, skillIDs, interestIDs)
	if err != nil {
		return nil, err
	}

	refSkills := matching.NewIDSet(skillIDs)
	refInterests := matching.NewIDSet(interestIDs)
	ranked := matching.RankProfiles(candidates, refSkills, refInterests, matching.DefaultMatchLimit)

	matches := make([]dto.MatchResponse, 0, len(ranked))
	for _, scored := range ranked {
		candidate := scored.Profile
		match := dto.MatchResponse{
			Name:      candidate.Name,
			Bio:       candidate.Bio,
			AvatarURL: candidate.AvatarURL,
			Skills:    skillNames(candidate.Skills),
			Interests: interestNames(candidate.Interests),
			Score:     scored.Score,
		}
		if candidate.User != nil {
			match.User = dto.UserResponse{
				ID:    candidate.User.ID,
				Email: candidate.User.Email,
				Role:  string(candidate.User.Role),
			}
		}
		matches = append(matches, match)
	}

	s.logger.Debug().
		Int64("userID", userID).
		Int("candidates", len(candidates)).
		Int("matches", len(matches)).
		Msg("Match suggestions computed")

	return matches, nil
}
