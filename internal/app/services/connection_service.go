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

// connectionStore is the connection persistence surface the service needs
type connectionStore interface {
	CreateConnection(ctx context.Context, conn *models.Connection) (int64, error)
	GetConnectionByID(ctx context.Context, id int64) (*models.Connection, error)
	GetConnectionForUsers(ctx context.Context, userA, userB int64) (*models.Connection, error)
	UpdateConnectionStatusIf(ctx context.Context, id int64, from, to models.ConnectionStatus) (*models.Connection, error)
	ReopenConnection(ctx context.Context, id, initiatorID int64) (*models.Connection, error)
	ListConnectionsByUser(ctx context.Context, userID int64, status models.ConnectionStatus) ([]*models.Connection, error)
	DeleteConnection(ctx context.Context, id int64) error
}

type userReader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type profileReader interface {
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type notificationWriter interface {
	CreateNotification(ctx context.Context, userID int64, notificationType models.NotificationType) (int64, error)
}

// ConnectionService defines the interface for the connection request lifecycle
type ConnectionService interface {
	SendRequest(ctx context.Context, initiatorID, targetID int64) (*dto.ConnectionResponse, bool, error)
	Respond(ctx context.Context, userID, connectionID int64, accept bool) (*dto.ConnectionResponse, error)
	ListConnections(ctx context.Context, userID int64, status models.ConnectionStatus) ([]dto.ConnectionResponse, error)
	ListPendingReceived(ctx context.Context, userID int64) ([]dto.ConnectionResponse, error)
	GetStatusWith(ctx context.Context, userID, otherID int64) (*dto.ConnectionStatusResponse, error)
	DeleteConnection(ctx context.Context, userID, connectionID int64) error
}

// connectionServiceImpl implements the ConnectionService interface
type connectionServiceImpl struct {
	connectionRepo connectionStore
	userRepo       userReader
	profileRepo    profileReader
	notifier       notificationWriter
	logger         zerolog.Logger
}

// NewConnectionService creates a new connection service instance
func NewConnectionService(
	connectionRepo connectionStore,
	userRepo userReader,
	profileRepo profileReader,
	notifier notificationWriter,
	logger zerolog.Logger,
) ConnectionService {
	return &connectionServiceImpl{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// SendRequest opens a pending connection between the initiator and the target.
// The pair must span both roles; the mentor and mentee slots are resolved from
// the participants' roles, never from who initiated. A declined pair is
// reopened in place, keeping its connection ID. The returned flag tells a
// freshly created request apart from a reopened one.
func (s *connectionServiceImpl) SendRequest(ctx context.Context, initiatorID, targetID int64) (*dto.ConnectionResponse, bool, error) {
	if initiatorID == targetID {
		return nil, false, apperrors.NewBadRequestError("You cannot send a connection request to yourself")
	}

	initiator, err := s.userRepo.GetUserByID(ctx, initiatorID)
	if err != nil {
		return nil, false, err
	}
	target, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, false, err
	}

	slots, err := matching.ResolveSlots(initiator.ID, initiator.Role, target.ID, target.Role)
	if err != nil {
		if errors.Is(err, matching.ErrIncompatibleRoles) {
			return nil, false, apperrors.NewBadRequestError("Connections require one mentor and one mentee")
		}
		return nil, false, err
	}

	existing, err := s.connectionRepo.GetConnectionForUsers(ctx, initiatorID, targetID)
	if err != nil {
		return nil, false, err
	}

	var conn *models.Connection
	created := false
	switch {
	case existing == nil:
		conn = &models.Connection{
			MentorID:    slots.MentorID,
			MenteeID:    slots.MenteeID,
			InitiatorID: initiatorID,
			Status:      models.ConnectionPending,
		}
		if _, err := s.connectionRepo.CreateConnection(ctx, conn); err != nil {
			return nil, false, err
		}
		created = true

	case existing.Status == models.ConnectionDeclined:
		conn, err = s.connectionRepo.ReopenConnection(ctx, existing.ID, initiatorID)
		if err != nil {
			return nil, false, err
		}
		if conn == nil {
			// Lost the race against a concurrent reopen
			return nil, false, apperrors.NewConflictError("A connection request between these users already exists")
		}

	case existing.Status == models.ConnectionAccepted:
		return nil, false, apperrors.NewConflictError("You are already connected with this user")

	default:
		return nil, false, apperrors.NewConflictError("A connection request between these users already exists")
	}

	s.notify(ctx, targetID, models.NotificationConnectionRequest)

	s.logger.Info().
		Int64("connectionID", conn.ID).
		Int64("initiatorID", initiatorID).
		Int64("targetID", targetID).
		Bool("created", created).
		Msg("Connection request sent")

	resp, err := s.buildConnectionResponse(ctx, conn)
	if err != nil {
		return nil, false, err
	}
	return resp, created, nil
}

// Respond accepts or declines a pending request. Only the receiving
// participant may respond, and only while the request is still pending.
func (s *connectionServiceImpl) Respond(ctx context.Context, userID, connectionID int64, accept bool) (*dto.ConnectionResponse, error) {
	conn, err := s.connectionRepo.GetConnectionByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}

	if !conn.IsParticipant(userID) {
		return nil, apperrors.NewForbiddenError("You are not a participant of this connection")
	}
	if conn.InitiatorID == userID {
		return nil, apperrors.NewForbiddenError("You cannot respond to your own connection request")
	}
	if conn.Status != models.ConnectionPending {
		return nil, apperrors.NewConflictError("This connection request is no longer pending")
	}

	to := models.ConnectionDeclined
	notification := models.NotificationConnectionDeclined
	if accept {
		to = models.ConnectionAccepted
		notification = models.NotificationConnectionAccepted
	}

	updated, err := s.connectionRepo.UpdateConnectionStatusIf(ctx, connectionID, models.ConnectionPending, to)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Another responder resolved the request first
		return nil, apperrors.NewConflictError("This connection request is no longer pending")
	}

	s.notify(ctx, conn.OtherParticipant(userID), notification)

	s.logger.Info().
		Int64("connectionID", connectionID).
		Int64("userID", userID).
		Str("status", string(to)).
		Msg("Connection request resolved")

	return s.buildConnectionResponse(ctx, updated)
}

// ListConnections lists the user's connections, optionally filtered by status
func (s *connectionServiceImpl) ListConnections(ctx context.Context, userID int64, status models.ConnectionStatus) ([]dto.ConnectionResponse, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid connection status filter")
	}

	conns, err := s.connectionRepo.ListConnectionsByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ConnectionResponse, 0, len(conns))
	for _, conn := range conns {
		resp, err := s.buildConnectionResponse(ctx, conn)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

// ListPendingReceived lists the pending requests waiting on the user's answer
func (s *connectionServiceImpl) ListPendingReceived(ctx context.Context, userID int64) ([]dto.ConnectionResponse, error) {
	conns, err := s.connectionRepo.ListConnectionsByUser(ctx, userID, models.ConnectionPending)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ConnectionResponse, 0)
	for _, conn := range conns {
		if conn.InitiatorID == userID {
			continue
		}
		resp, err := s.buildConnectionResponse(ctx, conn)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

// GetStatusWith reports the symmetric pair status between the user and another
// user. Both participants see the same status; isReceiver tells a pending
// request's receiver apart from its initiator.
func (s *connectionServiceImpl) GetStatusWith(ctx context.Context, userID, otherID int64) (*dto.ConnectionStatusResponse, error) {
	if userID == otherID {
		return nil, apperrors.NewBadRequestError("Cannot query connection status with yourself")
	}

	conn, err := s.connectionRepo.GetConnectionForUsers(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return &dto.ConnectionStatusResponse{Status: dto.ConnectionStatusNone}, nil
	}

	resp := &dto.ConnectionStatusResponse{ConnectionID: &conn.ID}
	switch conn.Status {
	case models.ConnectionPending:
		resp.Status = dto.ConnectionStatusPending
		resp.IsReceiver = conn.InitiatorID != userID
	case models.ConnectionAccepted:
		resp.Status = dto.ConnectionStatusConnected
	case models.ConnectionDeclined:
		resp.Status = dto.ConnectionStatusDeclined
	}

	return resp, nil
}

// DeleteConnection removes a connection. Either participant may remove it,
// after which the pair status reads as if no request was ever made.
func (s *connectionServiceImpl) DeleteConnection(ctx context.Context, userID, connectionID int64) error {
	conn, err := s.connectionRepo.GetConnectionByID(ctx, connectionID)
	if err != nil {
		return err
	}

	if !conn.IsParticipant(userID) {
		return apperrors.NewForbiddenError("You are not a participant of this connection")
	}

	if err := s.connectionRepo.DeleteConnection(ctx, connectionID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("connectionID", connectionID).
		Int64("userID", userID).
		Msg("Connection removed")

	return nil
}

// notify records a notification without letting a failure surface to the
// caller. The connection transition has already committed.
func (s *connectionServiceImpl) notify(ctx context.Context, userID int64, notificationType models.NotificationType) {
	if _, err := s.notifier.CreateNotification(ctx, userID, notificationType); err != nil {
		s.logger.Error().Err(err).
			Int64("userID", userID).
			Str("type", string(notificationType)).
			Msg("Failed to create notification")
	}
}

// buildConnectionResponse expands a connection row with both participants
func (s *connectionServiceImpl) buildConnectionResponse(ctx context.Context, conn *models.Connection) (*dto.ConnectionResponse, error) {
	mentor, err := s.participantOf(ctx, conn.MentorID)
	if err != nil {
		return nil, err
	}
	mentee, err := s.participantOf(ctx, conn.MenteeID)
	if err != nil {
		return nil, err
	}

	return &dto.ConnectionResponse{
		ID:          conn.ID,
		MentorID:    conn.MentorID,
		MenteeID:    conn.MenteeID,
		InitiatorID: conn.InitiatorID,
		Status:      conn.Status,
		Mentor:      mentor,
		Mentee:      mentee,
	}, nil
}

func (s *connectionServiceImpl) participantOf(ctx context.Context, userID int64) (dto.ConnectionParticipant, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return dto.ConnectionParticipant{}, err
	}

	participant := dto.ConnectionParticipant{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}

	profile, err := s.profileRepo.GetProfileByUserID(ctx, userID)
	if err == nil {
		participant.Profile = publicProfileOf(profile)
	} else if !errors.Is(err, apperrors.ErrProfileNotFound) {
		return dto.ConnectionParticipant{}, err
	}

	return participant, nil
}
