package matching

import (
	"errors"
	"testing"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
)

func TestResolveSlots(t *testing.T) {
	tests := []struct {
		name          string
		initiatorRole models.RoleType
		targetRole    models.RoleType
		wantMentor    int64
		wantMentee    int64
		wantErr       bool
	}{
		{name: "mentor initiates to mentee", initiatorRole: models.RoleMentor, targetRole: models.RoleMentee, wantMentor: 1, wantMentee: 2},
		{name: "mentee initiates to mentor", initiatorRole: models.RoleMentee, targetRole: models.RoleMentor, wantMentor: 2, wantMentee: 1},
		{name: "mentor to mentor", initiatorRole: models.RoleMentor, targetRole: models.RoleMentor, wantErr: true},
		{name: "mentee to mentee", initiatorRole: models.RoleMentee, targetRole: models.RoleMentee, wantErr: true},
		{name: "unknown initiator role", initiatorRole: "ADMIN", targetRole: models.RoleMentee, wantErr: true},
		{name: "unknown target role", initiatorRole: models.RoleMentor, targetRole: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := ResolveSlots(1, tt.initiatorRole, 2, tt.targetRole)
			if tt.wantErr {
				if !errors.Is(err, ErrIncompatibleRoles) {
					t.Fatalf("expected ErrIncompatibleRoles, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if slots.MentorID != tt.wantMentor || slots.MenteeID != tt.wantMentee {
				t.Errorf("expected slots (%d, %d), got (%d, %d)", tt.wantMentor, tt.wantMentee, slots.MentorID, slots.MenteeID)
			}
		})
	}
}

func TestResolveSlotsIgnoresInitiatorOrder(t *testing.T) {
	// The same user pair must resolve to the same slots regardless of which
	// side initiated.
	fromMentor, err := ResolveSlots(10, models.RoleMentor, 20, models.RoleMentee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromMentee, err := ResolveSlots(20, models.RoleMentee, 10, models.RoleMentor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromMentor != fromMentee {
		t.Errorf("slot resolution depends on initiator: %+v vs %+v", fromMentor, fromMentee)
	}
}

func TestCounterpartRole(t *testing.T) {
	t.Run("mentor sees mentees", func(t *testing.T) {
		role, ok := CounterpartRole(models.RoleMentor)
		if !ok || role != models.RoleMentee {
			t.Errorf("expected (MENTEE, true), got (%s, %v)", role, ok)
		}
	})

	t.Run("mentee sees mentors", func(t *testing.T) {
		role, ok := CounterpartRole(models.RoleMentee)
		if !ok || role != models.RoleMentor {
			t.Errorf("expected (MENTOR, true), got (%s, %v)", role, ok)
		}
	})

	t.Run("unknown role has no counterpart", func(t *testing.T) {
		if _, ok := CounterpartRole("ADMIN"); ok {
			t.Error("expected no counterpart for unknown role")
		}
	})
}
