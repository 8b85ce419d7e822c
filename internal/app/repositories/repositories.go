package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	ProfileRepository      *ProfileRepository
	VocabularyRepository   *VocabularyRepository
	ConnectionRepository   *ConnectionRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		VocabularyRepository:   NewVocabularyRepository(db),
		ConnectionRepository:   NewConnectionRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
