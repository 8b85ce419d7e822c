package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/repositories"
)

// NotificationService defines the interface for notification operations
type NotificationService interface {
	ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// notificationServiceImpl implements the NotificationService interface
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo *repositories.NotificationRepository, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// ListNotifications lists the user's notifications, newest first
func (s *notificationServiceImpl) ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return responses, nil
}

// MarkRead marks one of the user's notifications as read
func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.MarkNotificationRead(ctx, notificationID, userID)
}

// MarkAllRead marks all of the user's notifications as read
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllNotificationsRead(ctx, userID)
}
