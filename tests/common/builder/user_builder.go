//go:build unit || e2e

package builder

import (
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	id            uuid.UUID
	username      string
	email         string
	role          string
	reminderHours int
	reminderEmail *string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		id:            uuid.New(),
		username:      "alice",
		email:         "alice@example.com",
		role:          "resident",
		reminderHours: 0,
	}
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.id = id
	return b
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.role = role
	return b
}

func (b *UserBuilder) WithReminderHours(hours int) *UserBuilder {
	b.reminderHours = hours
	return b
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:            b.id,
		Username:      b.username,
		Email:         b.email,
		Role:          b.role,
		ReminderHours: b.reminderHours,
		ReminderEmail: b.reminderEmail,
	}
}
