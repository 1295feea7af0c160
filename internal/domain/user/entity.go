package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole      = errors.New("invalid role")
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrNegativeReminder = errors.New("reminder hours cannot be negative")
)

// User is the requester identity as the identity directory hands it to the
// booking core: who they are plus the reminder preference. Account
// management lives outside this service.
type User struct {
	id            uuid.UUID
	username      string
	email         string
	role          Role
	reminderHours int
	reminderEmail *string
}

func NewUser(id uuid.UUID, username, email string, role Role, reminderHours int, reminderEmail *string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if reminderHours < 0 {
		return nil, ErrNegativeReminder
	}
	return &User{
		id:            id,
		username:      strings.TrimSpace(username),
		email:         email,
		role:          role,
		reminderHours: reminderHours,
		reminderEmail: reminderEmail,
	}, nil
}

func (u *User) ID() uuid.UUID      { return u.id }
func (u *User) Username() string   { return u.username }
func (u *User) Email() string      { return u.email }
func (u *User) Role() Role         { return u.role }
func (u *User) ReminderHours() int { return u.reminderHours }

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }
func (u *User) IsGuest() bool { return u.role == RoleGuest }

// IsReminderOn reports whether the user opted into booking reminders.
func (u *User) IsReminderOn() bool {
	return u.reminderHours > 0
}

// ReminderAddress falls back to the account email when no dedicated
// reminder address is set.
func (u *User) ReminderAddress() string {
	if u.reminderEmail != nil && *u.reminderEmail != "" {
		return *u.reminderEmail
	}
	return u.email
}
