package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateNotification inserts a notification for a user
func (r *NotificationRepository) CreateNotification(ctx context.Context, userID int64, notificationType models.NotificationType) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, type)
		VALUES ($1, $2)
		RETURNING id`,
		userID, notificationType).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	return id, nil
}

// ListNotificationsByUser lists a user's notifications, newest first
func (r *NotificationRepository) ListNotificationsByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += " AND is_read = FALSE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		notification := &models.Notification{}
		err := rows.Scan(
			&notification.ID, &notification.UserID, &notification.Type,
			&notification.IsRead, &notification.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// MarkNotificationRead marks one of the user's notifications as read
func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, id, userID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2`,
		id, userID)

	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification of the user as read
func (r *NotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE`,
		userID)

	if err != nil {
		return fmt.Errorf("error marking notifications read: %w", err)
	}

	return nil
}
