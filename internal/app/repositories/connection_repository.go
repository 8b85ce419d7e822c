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

const connectionColumns = "id, mentor_id, mentee_id, initiator_id, status, created_at, updated_at"

// ConnectionRepository handles database operations for connections
type ConnectionRepository struct {
	db *pgxpool.Pool
}

// NewConnectionRepository creates a new ConnectionRepository
func NewConnectionRepository(db *pgxpool.Pool) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

func scanConnection(row pgx.Row) (*models.Connection, error) {
	conn := &models.Connection{}
	err := row.Scan(
		&conn.ID, &conn.MentorID, &conn.MenteeID, &conn.InitiatorID,
		&conn.Status, &conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// CreateConnection inserts a pending connection. The unique constraint on the
// (mentor, mentee) pair turns a concurrent duplicate insert into ErrConflict.
func (r *ConnectionRepository) CreateConnection(ctx context.Context, conn *models.Connection) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO connections (mentor_id, mentee_id, initiator_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		conn.MentorID, conn.MenteeID, conn.InitiatorID, conn.Status).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "connections_mentor_id_mentee_id_key") {
			return 0, apperrors.NewConflictError("A connection between these users already exists")
		}
		return 0, fmt.Errorf("error creating connection: %w", err)
	}

	conn.ID = id
	return id, nil
}

// GetConnectionByID retrieves a connection by ID
func (r *ConnectionRepository) GetConnectionByID(ctx context.Context, id int64) (*models.Connection, error) {
	conn, err := scanConnection(r.db.QueryRow(ctx, `
		SELECT `+connectionColumns+`
		FROM connections
		WHERE id = $1`,
		id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("error retrieving connection: %w", err)
	}

	return conn, nil
}

// GetConnectionForUsers retrieves the connection between two users regardless
// of which slot each occupies. Returns (nil, nil) when no row exists.
func (r *ConnectionRepository) GetConnectionForUsers(ctx context.Context, userA, userB int64) (*models.Connection, error) {
	conn, err := scanConnection(r.db.QueryRow(ctx, `
		SELECT `+connectionColumns+`
		FROM connections
		WHERE (mentor_id = $1 AND mentee_id = $2)
		   OR (mentor_id = $2 AND mentee_id = $1)`,
		userA, userB))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving connection for pair: %w", err)
	}

	return conn, nil
}

// UpdateConnectionStatusIf moves a connection from one status to another.
// The transition is conditional on the current status, so two concurrent
// responders cannot both win. Returns (nil, nil) when the row was not in the
// expected status.
func (r *ConnectionRepository) UpdateConnectionStatusIf(ctx context.Context, id int64, from, to models.ConnectionStatus) (*models.Connection, error) {
	conn, err := scanConnection(r.db.QueryRow(ctx, `
		UPDATE connections
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING `+connectionColumns,
		to, id, from))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating connection status: %w", err)
	}

	return conn, nil
}

// ReopenConnection moves a declined connection back to pending in place,
// recording the new initiator. Conditional on the row still being declined.
// Returns (nil, nil) when the row was not declined.
func (r *ConnectionRepository) ReopenConnection(ctx context.Context, id, initiatorID int64) (*models.Connection, error) {
	conn, err := scanConnection(r.db.QueryRow(ctx, `
		UPDATE connections
		SET status = $1, initiator_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING `+connectionColumns,
		models.ConnectionPending, initiatorID, id, models.ConnectionDeclined))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reopening connection: %w", err)
	}

	return conn, nil
}

// ListConnectionsByUser lists connections where the user occupies either slot,
// optionally filtered by status, most recent first
func (r *ConnectionRepository) ListConnectionsByUser(ctx context.Context, userID int64, status models.ConnectionStatus) ([]*models.Connection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM connections
		WHERE (mentor_id = $1 OR mentee_id = $1)`
	args := []interface{}{userID}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY updated_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing connections: %w", err)
	}
	defer rows.Close()

	var conns []*models.Connection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning connection: %w", err)
		}
		conns = append(conns, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating connections: %w", err)
	}

	return conns, nil
}

// DeleteConnection removes a connection row
func (r *ConnectionRepository) DeleteConnection(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM connections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting connection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConnectionNotFound
	}

	return nil
}
