package dto

import "github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"

// SendConnectionRequest carries the target of a new connection request
type SendConnectionRequest struct {
	RequestedUserID int64 `json:"requestedUserId" binding:"required,min=1"`
}

// RespondConnectionRequest identifies the connection a participant responds to
type RespondConnectionRequest struct {
	ConnectionID int64 `json:"connectionId" binding:"required,min=1"`
}

// ConnectionParticipant is one side of a connection, expanded with its public
// profile projection
type ConnectionParticipant struct {
	ID      int64         `json:"id"`
	Email   string        `json:"email"`
	Role    string        `json:"role"`
	Profile PublicProfile `json:"profile"`
}

// ConnectionResponse is a connection row expanded with both participants
type ConnectionResponse struct {
	ID          int64                 `json:"id"`
	MentorID    int64                 `json:"mentorId"`
	MenteeID    int64                 `json:"menteeId"`
	InitiatorID int64                 `json:"initiatorId"`
	Status      models.ConnectionStatus `json:"status"`
	Mentor      ConnectionParticipant `json:"mentor"`
	Mentee      ConnectionParticipant `json:"mentee"`
}

// ConnectionStatusValue is the symmetric pair-status vocabulary returned by the
// status query. CONNECTED maps to an ACCEPTED row.
type ConnectionStatusValue string

const (
	ConnectionStatusNone      ConnectionStatusValue = "NONE"
	ConnectionStatusPending   ConnectionStatusValue = "PENDING"
	ConnectionStatusConnected ConnectionStatusValue = "CONNECTED"
	ConnectionStatusDeclined  ConnectionStatusValue = "DECLINED"
)

// ConnectionStatusResponse answers "what is between me and this user"
type ConnectionStatusResponse struct {
	Status       ConnectionStatusValue `json:"status"`
	IsReceiver   bool                  `json:"isReceiver,omitempty"`
	ConnectionID *int64                `json:"connectionId,omitempty"`
}
