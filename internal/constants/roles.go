package constants

// UserRole is the platform-wide role attached to a user account.
type UserRole string

const (
	RoleInnovator UserRole = "INNOVATOR"
	RoleMentor    UserRole = "MENTOR"
	RoleAdmin     UserRole = "ADMIN"
	RoleFaculty   UserRole = "FACULTY"
	RoleOther     UserRole = "OTHER"
)

func (r UserRole) String() string {
	return string(r)
}

// Valid reports whether the role is one the platform knows about.
func (r UserRole) Valid() bool {
	switch r {
	case RoleInnovator, RoleMentor, RoleAdmin, RoleFaculty, RoleOther:
		return true
	}
	return false
}

// MeetingStatus tracks the lifecycle of a meeting log entry.
type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "SCHEDULED"
	MeetingActive    MeetingStatus = "ACTIVE"
	MeetingEnded     MeetingStatus = "ENDED"
)
