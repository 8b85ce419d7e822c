package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	appRepos "github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/repositories"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/auth"
)

// defaultSkills is the starter vocabulary offered to new profiles. The
// find-or-create path keeps reruns idempotent.
var defaultSkills = []string{
	"go", "python", "javascript", "typescript", "react",
	"sql", "docker", "kubernetes", "system design", "data engineering",
}

var defaultInterests = []string{
	"web development", "machine learning", "open source", "cloud computing",
	"career growth", "product management", "devops", "startups",
}

// CreateDefaultData seeds the starter vocabulary and, when the users table is
// empty, a demo mentor and mentee pair.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data (vocabulary, demo users)...")
	var finalErr error

	if _, err := repos.VocabularyRepository.FindOrCreateSkills(ctx, defaultSkills); err != nil {
		lgr.Error().Err(err).Msg("Error seeding default skills")
		finalErr = errors.Join(finalErr, err)
	}
	if _, err := repos.VocabularyRepository.FindOrCreateInterests(ctx, defaultInterests); err != nil {
		lgr.Error().Err(err).Msg("Error seeding default interests")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedDemoUsers(ctx, repos, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// seedDemoUsers provisions one mentor and one mentee with completed profiles
// so a fresh install has something to discover and match against
func seedDemoUsers(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	demos := []struct {
		email     string
		role      appModels.RoleType
		name      string
		bio       string
		skills    []string
		interests []string
	}{
		{
			email: "demo.mentor@example.com", role: appModels.RoleMentor,
			name: "Demo Mentor", bio: "Backend engineer happy to help newcomers.",
			skills:    []string{"go", "sql", "system design"},
			interests: []string{"open source", "career growth"},
		},
		{
			email: "demo.mentee@example.com", role: appModels.RoleMentee,
			name: "Demo Mentee", bio: "Learning backend development.",
			skills:    []string{"go", "python"},
			interests: []string{"open source", "web development"},
		},
	}

	var finalErr error
	for _, demo := range demos {
		hashedPassword, err := auth.HashPassword("demo-password")
		if err != nil {
			return err
		}

		user := &appModels.User{Email: demo.email, Password: hashedPassword, Role: demo.role}
		if _, err := repos.UserRepository.CreateUser(ctx, user); err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("email", demo.email).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		skills, err := repos.VocabularyRepository.FindOrCreateSkills(ctx, demo.skills)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		interests, err := repos.VocabularyRepository.FindOrCreateInterests(ctx, demo.interests)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		profile := &appModels.Profile{
			UserID:     user.ID,
			Name:       demo.name,
			Bio:        demo.bio,
			AvatarURL:  appModels.DefaultAvatarURL,
			IsComplete: true,
		}
		if _, err := repos.ProfileRepository.CreateProfile(ctx, profile); err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		skillIDs := make([]int64, 0, len(skills))
		for _, s := range skills {
			skillIDs = append(skillIDs, s.ID)
		}
		interestIDs := make([]int64, 0, len(interests))
		for _, i := range interests {
			interestIDs = append(interestIDs, i.ID)
		}

		if err := repos.VocabularyRepository.ReplaceProfileSkills(ctx, profile.ID, skillIDs); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
		if err := repos.VocabularyRepository.ReplaceProfileInterests(ctx, profile.ID, interestIDs); err != nil {
			finalErr = errors.Join(finalErr, err)
		}

		lgr.Info().Str("email", demo.email).Msg("Demo user created")
	}

	return finalErr
}
