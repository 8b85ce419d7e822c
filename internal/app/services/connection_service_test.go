package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
)

type fakeConnectionStore struct {
	conns  map[int64]*models.Connection
	nextID int64
}

func newFakeConnectionStore() *fakeConnectionStore {
	return &fakeConnectionStore{conns: make(map[int64]*models.Connection), nextID: 1}
}

func (f *fakeConnectionStore) seed(conn *models.Connection) *models.Connection {
	conn.ID = f.nextID
	f.nextID++
	f.conns[conn.ID] = conn
	return conn
}

func (f *fakeConnectionStore) CreateConnection(_ context.Context, conn *models.Connection) (int64, error) {
	for _, existing := range f.conns {
		if existing.MentorID == conn.MentorID && existing.MenteeID == conn.MenteeID {
			return 0, apperrors.NewConflictError("A connection between these users already exists")
		}
	}
	f.seed(conn)
	return conn.ID, nil
}

func (f *fakeConnectionStore) GetConnectionByID(_ context.Context, id int64) (*models.Connection, error) {
	conn, ok := f.conns[id]
	if !ok {
		return nil, apperrors.ErrConnectionNotFound
	}
	return conn, nil
}

func (f *fakeConnectionStore) GetConnectionForUsers(_ context.Context, userA, userB int64) (*models.Connection, error) {
	for _, conn := range f.conns {
		if (conn.MentorID == userA && conn.MenteeID == userB) ||
			(conn.MentorID == userB && conn.MenteeID == userA) {
			return conn, nil
		}
	}
	return nil, nil
}

func (f *fakeConnectionStore) UpdateConnectionStatusIf(_ context.Context, id int64, from, to models.ConnectionStatus) (*models.Connection, error) {
	conn, ok := f.conns[id]
	if !ok || conn.Status != from {
		return nil, nil
	}
	conn.Status = to
	return conn, nil
}

func (f *fakeConnectionStore) ReopenConnection(_ context.Context, id, initiatorID int64) (*models.Connection, error) {
	conn, ok := f.conns[id]
	if !ok || conn.Status != models.ConnectionDeclined {
		return nil, nil
	}
	conn.Status = models.ConnectionPending
	conn.InitiatorID = initiatorID
	return conn, nil
}

func (f *fakeConnectionStore) ListConnectionsByUser(_ context.Context, userID int64, status models.ConnectionStatus) ([]*models.Connection, error) {
	var conns []*models.Connection
	for i := int64(1); i < f.nextID; i++ {
		conn, ok := f.conns[i]
		if !ok || !conn.IsParticipant(userID) {
			continue
		}
		if status != "" && conn.Status != status {
			continue
		}
		conns = append(conns, conn)
	}
	return conns, nil
}

func (f *fakeConnectionStore) DeleteConnection(_ context.Context, id int64) error {
	if _, ok := f.conns[id]; !ok {
		return apperrors.ErrConnectionNotFound
	}
	delete(f.conns, id)
	return nil
}

type fakeUserReader struct {
	users map[int64]*models.User
}

func (f *fakeUserReader) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type fakeProfileReader struct {
	profiles map[int64]*models.Profile
}

func (f *fakeProfileReader) GetProfileByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

type notified struct {
	userID int64
	kind   models.NotificationType
}

type fakeNotifier struct {
	sent []notified
	err  error
}

func (f *fakeNotifier) CreateNotification(_ context.Context, userID int64, kind models.NotificationType) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sent = append(f.sent, notified{userID: userID, kind: kind})
	return int64(len(f.sent)), nil
}

type connectionFixture struct {
	svc      ConnectionService
	store    *fakeConnectionStore
	notifier *fakeNotifier
}

// newConnectionFixture wires the service with a mentor (1), a mentee (2) and a
// second mentee (3)
func newConnectionFixture() *connectionFixture {
	store := newFakeConnectionStore()
	notifier := &fakeNotifier{}
	users := &fakeUserReader{users: map[int64]*models.User{
		1: {ID: 1, Email: "mentor@example.com", Role: models.RoleMentor},
		2: {ID: 2, Email: "mentee@example.com", Role: models.RoleMentee},
		3: {ID: 3, Email: "other-mentee@example.com", Role: models.RoleMentee},
	}}
	profiles := &fakeProfileReader{profiles: map[int64]*models.Profile{
		1: {ID: 10, UserID: 1, Name: "Mentor"},
		2: {ID: 20, UserID: 2, Name: "Mentee"},
	}}

	return &connectionFixture{
		svc:      NewConnectionService(store, users, profiles, notifier, zerolog.Nop()),
		store:    store,
		notifier: notifier,
	}
}

func TestSendRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("mentee initiating resolves slots from roles", func(t *testing.T) {
		fx := newConnectionFixture()

		resp, created, err := fx.svc.SendRequest(ctx, 2, 1)
		if err != nil {
			t.Fatalf("SendRequest() error = %v", err)
		}
		if !created {
			t.Error("created = false, want true for a fresh request")
		}
		if resp.MentorID != 1 || resp.MenteeID != 2 {
			t.Errorf("slots = (%d, %d), want (1, 2)", resp.MentorID, resp.MenteeID)
		}
		if resp.InitiatorID != 2 {
			t.Errorf("InitiatorID = %d, want 2", resp.InitiatorID)
		}
		if resp.Status != models.ConnectionPending {
			t.Errorf("Status = %s, want %s", resp.Status, models.ConnectionPending)
		}
	})

	t.Run("mentor initiating resolves the same slots", func(t *testing.T) {
		fx := newConnectionFixture()

		resp, _, err := fx.svc.SendRequest(ctx, 1, 2)
		if err != nil {
			t.Fatalf("SendRequest() error = %v", err)
		}
		if resp.MentorID != 1 || resp.MenteeID != 2 {
			t.Errorf("slots = (%d, %d), want (1, 2)", resp.MentorID, resp.MenteeID)
		}
		if resp.InitiatorID != 1 {
			t.Errorf("InitiatorID = %d, want 1", resp.InitiatorID)
		}
	})

	t.Run("notifies the target", func(t *testing.T) {
		fx := newConnectionFixture()

		if _, _, err := fx.svc.SendRequest(ctx, 2, 1); err != nil {
			t.Fatalf("SendRequest() error = %v", err)
		}
		if len(fx.notifier.sent) != 1 {
			t.Fatalf("notifications = %d, want 1", len(fx.notifier.sent))
		}
		if got := fx.notifier.sent[0]; got.userID != 1 || got.kind != models.NotificationConnectionRequest {
			t.Errorf("notification = %+v, want user 1 %s", got, models.NotificationConnectionRequest)
		}
	})

	t.Run("notification failure does not fail the request", func(t *testing.T) {
		fx := newConnectionFixture()
		fx.notifier.err = errors.New("notification store down")

		if _, _, err := fx.svc.SendRequest(ctx, 2, 1); err != nil {
			t.Fatalf("SendRequest() error = %v", err)
		}
	})

	t.Run("self request is rejected", func(t *testing.T) {
		fx := newConnectionFixture()

		_, _, err := fx.svc.SendRequest(ctx, 2, 2)
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("SendRequest() error = %v, want ErrBadRequest", err)
		}
	})

	t.Run("same role pair is rejected", func(t *testing.T) {
		fx := newConnectionFixture()

		_, _, err := fx.svc.SendRequest(ctx, 2, 3)
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("SendRequest() error = %v, want ErrBadRequest", err)
		}
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		fx := newConnectionFixture()

		_, _, err := fx.svc.SendRequest(ctx, 2, 99)
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("SendRequest() error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("duplicate pending request conflicts", func(t *testing.T) {
		fx := newConnectionFixture()

		if _, _, err := fx.svc.SendRequest(ctx, 2, 1); err != nil {
			t.Fatalf("first SendRequest() error = %v", err)
		}
		_, _, err := fx.svc.SendRequest(ctx, 2, 1)
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("second SendRequest() error = %v, want ErrConflict", err)
		}
	})

	t.Run("request from the other side of a pending pair conflicts", func(t *testing.T) {
		fx := newConnectionFixture()

		if _, _, err := fx.svc.SendRequest(ctx, 2, 1); err != nil {
			t.Fatalf("SendRequest() error = %v", err)
		}
		_, _, err := fx.svc.SendRequest(ctx, 1, 2)
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("SendRequest() error = %v, want ErrConflict", err)
		}
	})

	t.Run("request to an accepted connection conflicts", func(t *testing.T) {
		fx := newConnectionFixture()
		fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 2, InitiatorID: 2, Status: models.ConnectionAccepted})

		_, _, err := fx.svc.SendRequest(ctx, 2, 1)
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("SendRequest() error = %v, want ErrConflict", err)
		}
	})

	t.Run("declined pair reopens in place", func(t *testing.T) {
		fx := newConnectionFixture()
		declined := fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 2, InitiatorID: 2, Status: models.ConnectionDeclined})

		resp, created, err := fx.svc.SendRequest(ctx, 1, 2)
		if err != nil {
			t.Fatalf("SendRequest() error = %v", err)
		}
		if created {
			t.Error("created = true, want false for a reopened request")
		}
		if resp.ID != declined.ID {
			t.Errorf("connection ID = %d, want reopened row %d", resp.ID, declined.ID)
		}
		if resp.Status != models.ConnectionPending {
			t.Errorf("Status = %s, want %s", resp.Status, models.ConnectionPending)
		}
		if resp.InitiatorID != 1 {
			t.Errorf("InitiatorID = %d, want new initiator 1", resp.InitiatorID)
		}
	})
}

func TestRespond(t *testing.T) {
	ctx := context.Background()

	pending := func(fx *connectionFixture) *models.Connection {
		return fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 2, InitiatorID: 2, Status: models.ConnectionPending})
	}

	t.Run("receiver accepts", func(t *testing.T) {
		fx := newConnectionFixture()
		conn := pending(fx)

		resp, err := fx.svc.Respond(ctx, 1, conn.ID, true)
		if err != nil {
			t.Fatalf("Respond() error = %v", err)
		}
		if resp.Status != models.ConnectionAccepted {
			t.Errorf("Status = %s, want %s", resp.Status, models.ConnectionAccepted)
		}
		if len(fx.notifier.sent) != 1 || fx.notifier.sent[0].userID != 2 ||
			fx.notifier.sent[0].kind != models.NotificationConnectionAccepted {
			t.Errorf("notifications = %+v, want accepted notification for user 2", fx.notifier.sent)
		}
	})

	t.Run("receiver declines", func(t *testing.T) {
		fx := newConnectionFixture()
		conn := pending(fx)

		resp, err := fx.svc.Respond(ctx, 1, conn.ID, false)
		if err != nil {
			t.Fatalf("Respond() error = %v", err)
		}
		if resp.Status != models.ConnectionDeclined {
			t.Errorf("Status = %s, want %s", resp.Status, models.ConnectionDeclined)
		}
		if len(fx.notifier.sent) != 1 || fx.notifier.sent[0].kind != models.NotificationConnectionDeclined {
			t.Errorf("notifications = %+v, want declined notification", fx.notifier.sent)
		}
	})

	t.Run("initiator cannot respond to own request", func(t *testing.T) {
		fx := newConnectionFixture()
		conn := pending(fx)

		_, err := fx.svc.Respond(ctx, 2, conn.ID, true)
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("Respond() error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("non participant cannot respond", func(t *testing.T) {
		fx := newConnectionFixture()
		conn := pending(fx)

		_, err := fx.svc.Respond(ctx, 3, conn.ID, true)
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("Respond() error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("already resolved request conflicts", func(t *testing.T) {
		fx := newConnectionFixture()
		conn := pending(fx)

		if _, err := fx.svc.Respond(ctx, 1, conn.ID, true); err != nil {
			t.Fatalf("first Respond() error = %v", err)
		}
		_, err := fx.svc.Respond(ctx, 1, conn.ID, false)
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("second Respond() error = %v, want ErrConflict", err)
		}
	})

	t.Run("missing connection", func(t *testing.T) {
		fx := newConnectionFixture()

		_, err := fx.svc.Respond(ctx, 1, 42, true)
		if !errors.Is(err, apperrors.ErrConnectionNotFound) {
			t.Errorf("Respond() error = %v, want ErrConnectionNotFound", err)
		}
	})
}

func TestGetStatusWith(t *testing.T) {
	ctx := context.Background()

	t.Run("no connection reads NONE", func(t *testing.T) {
		fx := newConnectionFixture()

		resp, err := fx.svc.GetStatusWith(ctx, 1, 2)
		if err != nil {
			t.Fatalf("GetStatusWith() error = %v", err)
		}
		if resp.Status != "NONE" {
			t.Errorf("Status = %s, want NONE", resp.Status)
		}
		if resp.ConnectionID != nil {
			t.Errorf("ConnectionID = %v, want nil", *resp.ConnectionID)
		}
	})

	t.Run("pending exposes the receiver flag", func(t *testing.T) {
		fx := newConnectionFixture()
		conn := fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 2, InitiatorID: 2, Status: models.ConnectionPending})

		asReceiver, err := fx.svc.GetStatusWith(ctx, 1, 2)
		if err != nil {
			t.Fatalf("GetStatusWith() error = %v", err)
		}
		if asReceiver.Status != "PENDING" || !asReceiver.IsReceiver {
			t.Errorf("receiver view = %+v, want PENDING with IsReceiver", asReceiver)
		}
		if asReceiver.ConnectionID == nil || *asReceiver.ConnectionID != conn.ID {
			t.Errorf("ConnectionID = %v, want %d", asReceiver.ConnectionID, conn.ID)
		}

		asInitiator, err := fx.svc.GetStatusWith(ctx, 2, 1)
		if err != nil {
			t.Fatalf("GetStatusWith() error = %v", err)
		}
		if asInitiator.Status != "PENDING" || asInitiator.IsReceiver {
			t.Errorf("initiator view = %+v, want PENDING without IsReceiver", asInitiator)
		}
	})

	t.Run("accepted reads CONNECTED for both participants", func(t *testing.T) {
		fx := newConnectionFixture()
		fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 2, InitiatorID: 2, Status: models.ConnectionAccepted})

		for _, pair := range [][2]int64{{1, 2}, {2, 1}} {
			resp, err := fx.svc.GetStatusWith(ctx, pair[0], pair[1])
			if err != nil {
				t.Fatalf("GetStatusWith(%d, %d) error = %v", pair[0], pair[1], err)
			}
			if resp.Status != "CONNECTED" {
				t.Errorf("GetStatusWith(%d, %d) = %s, want CONNECTED", pair[0], pair[1], resp.Status)
			}
		}
	})

	t.Run("removed connection reads NONE again", func(t *testing.T) {
		fx := newConnectionFixture()
		conn := fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 2, InitiatorID: 2, Status: models.ConnectionAccepted})

		if err := fx.svc.DeleteConnection(ctx, 1, conn.ID); err != nil {
			t.Fatalf("DeleteConnection() error = %v", err)
		}
		resp, err := fx.svc.GetStatusWith(ctx, 1, 2)
		if err != nil {
			t.Fatalf("GetStatusWith() error = %v", err)
		}
		if resp.Status != "NONE" {
			t.Errorf("Status = %s, want NONE", resp.Status)
		}
	})

	t.Run("status with self is rejected", func(t *testing.T) {
		fx := newConnectionFixture()

		_, err := fx.svc.GetStatusWith(ctx, 1, 1)
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("GetStatusWith() error = %v, want ErrBadRequest", err)
		}
	})
}

func TestListConnectionsPlaceholderProfile(t *testing.T) {
	ctx := context.Background()
	fx := newConnectionFixture()
	// Mentee 3 has no profile row yet
	fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 3, InitiatorID: 3, Status: models.ConnectionPending})

	conns, err := fx.svc.ListConnections(ctx, 1, "")
	if err != nil {
		t.Fatalf("ListConnections() error = %v", err)
	}
	if len(conns) != 1 {
		t.Fatalf("connections = %d, want 1", len(conns))
	}
	if got := conns[0].Mentee.Profile.Name; got != "Unnamed User" {
		t.Errorf("mentee profile name = %q, want %q", got, "Unnamed User")
	}
	if got := conns[0].Mentor.Profile.Name; got != "Mentor" {
		t.Errorf("mentor profile name = %q, want %q", got, "Mentor")
	}
}

func TestDeleteConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("non participant is forbidden", func(t *testing.T) {
		fx := newConnectionFixture()
		conn := fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 2, InitiatorID: 2, Status: models.ConnectionAccepted})

		err := fx.svc.DeleteConnection(ctx, 3, conn.ID)
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("DeleteConnection() error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("missing connection", func(t *testing.T) {
		fx := newConnectionFixture()

		err := fx.svc.DeleteConnection(ctx, 1, 42)
		if !errors.Is(err, apperrors.ErrConnectionNotFound) {
			t.Errorf("DeleteConnection() error = %v, want ErrConnectionNotFound", err)
		}
	})
}

func TestListPendingReceived(t *testing.T) {
	ctx := context.Background()
	fx := newConnectionFixture()
	fx.store.seed(&models.Connection{MentorID: 1, MenteeID: 2, InitiatorID: 2, Status: models.ConnectionPending})

	received, err := fx.svc.ListPendingReceived(ctx, 1)
	if err != nil {
		t.Fatalf("ListPendingReceived() error = %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("mentor received = %d requests, want 1", len(received))
	}
	if received[0].Mentee.ID != 2 {
		t.Errorf("received request mentee = %d, want 2", received[0].Mentee.ID)
	}

	sent, err := fx.svc.ListPendingReceived(ctx, 2)
	if err != nil {
		t.Fatalf("ListPendingReceived() error = %v", err)
	}
	if len(sent) != 0 {
		t.Errorf("initiator received = %d requests, want 0", len(sent))
	}
}
