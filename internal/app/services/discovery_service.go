package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/repositories"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/helpers"
)

// DiscoveryService defines the interface for browsing other users
type DiscoveryService interface {
	Discover(ctx context.Context, userID int64, filter dto.DiscoveryFilter, page, size int) (*dto.DiscoveryResponse, error)
}

// discoveryServiceImpl implements the DiscoveryService interface
type discoveryServiceImpl struct {
	profileRepo *repositories.ProfileRepository
	logger      zerolog.Logger
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(profileRepo *repositories.ProfileRepository, logger zerolog.Logger) DiscoveryService {
	return &discoveryServiceImpl{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Discover lists other users with completed profiles, filtered by role and by
// case-insensitive skill or interest substring, newest profiles first
func (s *discoveryServiceImpl) Discover(ctx context.Context, userID int64, filter dto.DiscoveryFilter, page, size int) (*dto.DiscoveryResponse, error) {
	role := strings.ToUpper(strings.TrimSpace(filter.Role))
	if role != "" && !models.RoleType(role).Valid() {
		return nil, apperrors.NewBadRequestError("Role filter must be MENTOR or MENTEE")
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, total, err := s.profileRepo.DiscoverUsers(ctx, userID, role,
		strings.TrimSpace(filter.Skills), strings.TrimSpace(filter.Interests), offset, limit)
	if err != nil {
		return nil, err
	}

	listed := make([]dto.DiscoveredUser, 0, len(users))
	for _, user := range users {
		listed = append(listed, dto.DiscoveredUser{
			ID:      user.ID,
			Email:   user.Email,
			Role:    string(user.Role),
			Profile: publicProfileOf(user.Profile),
		})
	}

	return &dto.DiscoveryResponse{
		Users:      listed,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}
