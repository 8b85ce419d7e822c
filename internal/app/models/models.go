package models

// RoleType defines the user role type
type RoleType string

const (
	RoleMentor RoleType = "MENTOR"
	RoleMentee RoleType = "MENTEE"
)

// ConnectionStatus represents the lifecycle state of a mentor-mentee connection
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "PENDING"
	ConnectionAccepted ConnectionStatus = "ACCEPTED"
	ConnectionDeclined ConnectionStatus = "DECLINED"
)

// Valid reports whether the value is a known connection status
func (s ConnectionStatus) Valid() bool {
	switch s {
	case ConnectionPending, ConnectionAccepted, ConnectionDeclined:
		return true
	}
	return false
}

// Valid reports whether the value is a known role
func (r RoleType) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// NotificationType identifies the event a notification row was created for
type NotificationType string

const (
	NotificationConnectionRequest  NotificationType = "CONNECTION_REQUEST"
	NotificationConnectionAccepted NotificationType = "CONNECTION_ACCEPTED"
	NotificationConnectionDeclined NotificationType = "CONNECTION_DECLINED"
)
