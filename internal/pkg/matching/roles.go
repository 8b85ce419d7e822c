// Package matching holds the pure matchmaking core: affinity scoring over
// skill/interest overlap and the mentor/mentee slot resolution used by the
// connection ledger.
package matching

import (
	"errors"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
)

// ErrIncompatibleRoles is returned when a user pair cannot be resolved into
// mentor/mentee slots (same role on both sides, or an unknown role).
var ErrIncompatibleRoles = errors.New("roles incompatible")

// Slots is the canonical (mentor, mentee) ordering of a user pair. It is
// derived from roles alone, never from who initiated the request.
type Slots struct {
	MentorID int64
	MenteeID int64
}

// ResolveSlots maps an (initiator, target) user pair onto mentor/mentee slots.
// Total over the four role combinations: exactly one MENTOR and one MENTEE is
// required, every other combination yields ErrIncompatibleRoles.
func ResolveSlots(initiatorID int64, initiatorRole models.RoleType, targetID int64, targetRole models.RoleType) (Slots, error) {
	switch {
	case initiatorRole == models.RoleMentor && targetRole == models.RoleMentee:
		return Slots{MentorID: initiatorID, MenteeID: targetID}, nil
	case initiatorRole == models.RoleMentee && targetRole == models.RoleMentor:
		return Slots{MentorID: targetID, MenteeID: initiatorID}, nil
	default:
		return Slots{}, ErrIncompatibleRoles
	}
}

// CounterpartRole returns the role a user of the given role can connect with.
// The second result is false for roles outside the mentor/mentee vocabulary.
func CounterpartRole(role models.RoleType) (models.RoleType, bool) {
	switch role {
	case models.RoleMentor:
		return models.RoleMentee, true
	case models.RoleMentee:
		return models.RoleMentor, true
	default:
		return "", false
	}
}
