package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
)

// VocabularyRepository handles the shared skill and interest vocabulary and its
// profile associations
type VocabularyRepository struct {
	db *pgxpool.Pool
}

// NewVocabularyRepository creates a new VocabularyRepository
func NewVocabularyRepository(db *pgxpool.Pool) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

// NormalizeName lowercases and trims a vocabulary entry name. Two submissions
// differing only in case or surrounding whitespace resolve to the same row.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FindOrCreateSkills resolves a list of skill names to vocabulary rows,
// creating missing entries. Blank names are skipped and duplicates collapse.
func (r *VocabularyRepository) FindOrCreateSkills(ctx context.Context, names []string) ([]models.Skill, error) {
	var skills []models.Skill
	seen := make(map[string]struct{})

	for _, name := range names {
		normalized := NormalizeName(name)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}

		var skill models.Skill
		err := r.db.QueryRow(ctx, `
			INSERT INTO skills (name)
			VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id, name`,
			normalized).Scan(&skill.ID, &skill.Name)
		if err != nil {
			return nil, fmt.Errorf("error resolving skill %q: %w", normalized, err)
		}
		skills = append(skills, skill)
	}

	return skills, nil
}

// FindOrCreateInterests resolves a list of interest names to vocabulary rows,
// creating missing entries
func (r *VocabularyRepository) FindOrCreateInterests(ctx context.Context, names []string) ([]models.Interest, error) {
	var interests []models.Interest
	seen := make(map[string]struct{})

	for _, name := range names {
		normalized := NormalizeName(name)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}

		var interest models.Interest
		err := r.db.QueryRow(ctx, `
			INSERT INTO interests (name)
			VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id, name`,
			normalized).Scan(&interest.ID, &interest.Name)
		if err != nil {
			return nil, fmt.Errorf("error resolving interest %q: %w", normalized, err)
		}
		interests = append(interests, interest)
	}

	return interests, nil
}

// ReplaceProfileSkills swaps a profile's skill associations for the given set
func (r *VocabularyRepository) ReplaceProfileSkills(ctx context.Context, profileID int64, skillIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM profile_skills WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("error clearing profile skills: %w", err)
	}

	for _, skillID := range skillIDs {
		_, err := r.db.Exec(ctx, `
			INSERT INTO profile_skills (profile_id, skill_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			profileID, skillID)
		if err != nil {
			return fmt.Errorf("error attaching skill %d: %w", skillID, err)
		}
	}

	return nil
}

// ReplaceProfileInterests swaps a profile's interest associations for the given set
func (r *VocabularyRepository) ReplaceProfileInterests(ctx context.Context, profileID int64, interestIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM profile_interests WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("error clearing profile interests: %w", err)
	}

	for _, interestID := range interestIDs {
		_, err := r.db.Exec(ctx, `
			INSERT INTO profile_interests (profile_id, interest_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			profileID, interestID)
		if err != nil {
			return fmt.Errorf("error attaching interest %d: %w", interestID, err)
		}
	}

	return nil
}
