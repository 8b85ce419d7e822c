package dto

import (
	"time"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
)

// NotificationResponse is one notification entry
type NotificationResponse struct {
	ID        int64                   `json:"id"`
	Type      models.NotificationType `json:"type"`
	IsRead    bool                    `json:"isRead"`
	CreatedAt time.Time               `json:"createdAt"`
}
