package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/dberrors"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// CreateProfile inserts a profile row for a user
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO profiles (user_id, name, bio, avatar_url, is_complete)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		profile.UserID, profile.Name, profile.Bio, profile.AvatarURL, profile.IsComplete).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_user_id_key") {
			return 0, apperrors.ErrProfileAlreadyExists
		}
		return 0, fmt.Errorf("error creating profile: %w", err)
	}

	profile.ID = id
	return id, nil
}

// GetProfileByUserID retrieves a profile with its skills and interests loaded
func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	profile := &models.Profile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, bio, avatar_url, is_complete, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`,
		userID).Scan(
		&profile.ID, &profile.UserID, &profile.Name, &profile.Bio,
		&profile.AvatarURL, &profile.IsComplete, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	if err := r.loadVocabulary(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile updates the scalar profile fields
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET name = $1, bio = $2, avatar_url = $3, is_complete = $4, updated_at = NOW()
		WHERE id = $5`,
		profile.Name, profile.Bio, profile.AvatarURL, profile.IsComplete, profile.ID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// DeleteProfile removes a user's profile row; association rows cascade
func (r *ProfileRepository) DeleteProfile(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error deleting profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// GetMatchCandidates returns completed profiles of the given role, excluding the
// requesting user, that share at least one skill or interest with the reference
// vocabulary. Skills and interests are loaded for each candidate.
func (r *ProfileRepository) GetMatchCandidates(ctx context.Context, excludeUserID int64, role models.RoleType, skillIDs, interestIDs []int64) ([]*models.Profile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.user_id, p.name, p.bio, p.avatar_url, p.is_complete, p.created_at, p.updated_at,
		       u.id, u.email, u.role
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id != $1
		  AND u.role = $2
		  AND p.is_complete = TRUE
		  AND (
		      EXISTS (SELECT 1 FROM profile_skills ps WHERE ps.profile_id = p.id AND ps.skill_id = ANY($3))
		      OR EXISTS (SELECT 1 FROM profile_interests pi WHERE pi.profile_id = p.id AND pi.interest_id = ANY($4))
		  )
		ORDER BY p.id`,
		excludeUserID, role, skillIDs, interestIDs)

	if err != nil {
		return nil, fmt.Errorf("error querying match candidates: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile := &models.Profile{User: &models.User{}}
		err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.Name, &profile.Bio,
			&profile.AvatarURL, &profile.IsComplete, &profile.CreatedAt, &profile.UpdatedAt,
			&profile.User.ID, &profile.User.Email, &profile.User.Role)
		if err != nil {
			return nil, fmt.Errorf("error scanning match candidate: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match candidates: %w", err)
	}

	for _, profile := range profiles {
		if err := r.loadVocabulary(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profiles, nil
}

// DiscoverUsers lists users with completed profiles, excluding the requesting
// user, optionally filtered by role and by case-insensitive skill or interest
// substring. Returns the page of users and the total match count.
func (r *ProfileRepository) DiscoverUsers(ctx context.Context, excludeUserID int64, role, skill, interest string, offset, limit int) ([]*models.User, int64, error) {
	where := `
		FROM users u
		JOIN profiles p ON p.user_id = u.id
		WHERE u.id != $1
		  AND p.is_complete = TRUE`
	args := []interface{}{excludeUserID}

	if role != "" {
		args = append(args, role)
		where += fmt.Sprintf(" AND u.role = $%d", len(args))
	}
	if skill != "" {
		args = append(args, "%"+skill+"%")
		where += fmt.Sprintf(`
		  AND EXISTS (
		      SELECT 1 FROM profile_skills ps
		      JOIN skills s ON s.id = ps.skill_id
		      WHERE ps.profile_id = p.id AND s.name ILIKE $%d
		  )`, len(args))
	}
	if interest != "" {
		args = append(args, "%"+interest+"%")
		where += fmt.Sprintf(`
		  AND EXISTS (
		      SELECT 1 FROM profile_interests pi
		      JOIN interests i ON i.id = pi.interest_id
		      WHERE pi.profile_id = p.id AND i.name ILIKE $%d
		  )`, len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*)"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting discoverable users: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT u.id, u.email, u.role,
		       p.id, p.user_id, p.name, p.bio, p.avatar_url, p.is_complete, p.created_at, p.updated_at
		%s
		ORDER BY p.created_at DESC, u.id
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying discoverable users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{Profile: &models.Profile{}}
		err := rows.Scan(
			&user.ID, &user.Email, &user.Role,
			&user.Profile.ID, &user.Profile.UserID, &user.Profile.Name, &user.Profile.Bio,
			&user.Profile.AvatarURL, &user.Profile.IsComplete, &user.Profile.CreatedAt, &user.Profile.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning discoverable user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating discoverable users: %w", err)
	}

	for _, user := range users {
		if err := r.loadVocabulary(ctx, user.Profile); err != nil {
			return nil, 0, err
		}
	}

	return users, total, nil
}

// loadVocabulary fills the Skills and Interests slices of a profile
func (r *ProfileRepository) loadVocabulary(ctx context.Context, profile *models.Profile) error {
	skillRows, err := r.db.Query(ctx, `
		SELECT s.id, s.name
		FROM skills s
		JOIN profile_skills ps ON ps.skill_id = s.id
		WHERE ps.profile_id = $1
		ORDER BY s.name`,
		profile.ID)
	if err != nil {
		return fmt.Errorf("error loading profile skills: %w", err)
	}
	defer skillRows.Close()

	profile.Skills = nil
	for skillRows.Next() {
		var skill models.Skill
		if err := skillRows.Scan(&skill.ID, &skill.Name); err != nil {
			return fmt.Errorf("error scanning profile skill: %w", err)
		}
		profile.Skills = append(profile.Skills, skill)
	}
	if err := skillRows.Err(); err != nil {
		return fmt.Errorf("error iterating profile skills: %w", err)
	}

	interestRows, err := r.db.Query(ctx, `
		SELECT i.id, i.name
		FROM interests i
		JOIN profile_interests pi ON pi.interest_id = i.id
		WHERE pi.profile_id = $1
		ORDER BY i.name`,
		profile.ID)
	if err != nil {
		return fmt.Errorf("error loading profile interests: %w", err)
	}
	defer interestRows.Close()

	profile.Interests = nil
	for interestRows.Next() {
		var interest models.Interest
		if err := interestRows.Scan(&interest.ID, &interest.Name); err != nil {
			return fmt.Errorf("error scanning profile interest: %w", err)
		}
		profile.Interests = append(profile.Interests, interest)
	}
	if err := interestRows.Err(); err != nil {
		return fmt.Errorf("error iterating profile interests: %w", err)
	}

	return nil
}
