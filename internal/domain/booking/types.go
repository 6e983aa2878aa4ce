package booking

type Session string

const (
	Session15Min Session = "15-min"
	Session30Min Session = "30-min"
	Session45Min Session = "45-min"
	Session60Min Session = "60-min"
)

func (s Session) String() string {
	return string(s)
}

func (s Session) IsValid() bool {
	switch s {
	case Session15Min, Session30Min, Session45Min, Session60Min:
		return true
	default:
		return false
	}
}

// Role selects the notification template audience.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type NotificationKind string

const (
	KindConfirmation NotificationKind = "confirmation"
	KindCancellation NotificationKind = "cancellation"
)
