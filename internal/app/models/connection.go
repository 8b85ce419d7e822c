package models

import "time"

// Connection represents a mentor-mentee relationship based on the 'connections'
// table. The mentor/mentee slots are canonical: mentor_id always references a
// MENTOR user and mentee_id a MENTEE user, regardless of who initiated the
// request. initiator_id records the requesting party so that a pending request
// can be told apart from a received one.
type Connection struct {
	ID          int64            `json:"id" db:"id"`
	MentorID    int64            `json:"mentorId" db:"mentor_id"`
	MenteeID    int64            `json:"menteeId" db:"mentee_id"`
	InitiatorID int64            `json:"initiatorId" db:"initiator_id"`
	Status      ConnectionStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`

	// Related entities
	Mentor *User `json:"mentor,omitempty"`
	Mentee *User `json:"mentee,omitempty"`
}

// IsParticipant reports whether the given user is a party to the connection
func (c *Connection) IsParticipant(userID int64) bool {
	return c.MentorID == userID || c.MenteeID == userID
}

// OtherParticipant returns the participant opposite to the given user
func (c *Connection) OtherParticipant(userID int64) int64 {
	if c.MentorID == userID {
		return c.MenteeID
	}
	return c.MentorID
}
