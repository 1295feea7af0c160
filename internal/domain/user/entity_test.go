//go:build unit

package user_test

import (
	"testing"

	"slotify/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	id := uuid.New()

	t.Run("valid user", func(t *testing.T) {
		u, err := user.NewUser(id, "  alice  ", "alice@example.com", user.RoleResident, 2, nil)
		require.NoError(t, err)

		assert.Equal(t, id, u.ID())
		assert.Equal(t, "alice", u.Username())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, user.RoleResident, u.Role())
		assert.Equal(t, 2, u.ReminderHours())
	})

	t.Run("invalid rows are rejected", func(t *testing.T) {
		testCases := []struct {
			name          string
			username      string
			role          user.Role
			reminderHours int
			wantErr       error
		}{
			{
				name:     "empty username",
				username: "",
				role:     user.RoleResident,
				wantErr:  user.ErrEmptyUsername,
			},
			{
				name:     "whitespace-only username",
				username: "   ",
				role:     user.RoleResident,
				wantErr:  user.ErrEmptyUsername,
			},
			{
				name:     "unknown role",
				username: "alice",
				role:     user.Role("superuser"),
				wantErr:  user.ErrInvalidRole,
			},
			{
				name:          "negative reminder hours",
				username:      "alice",
				role:          user.RoleResident,
				reminderHours: -1,
				wantErr:       user.ErrNegativeReminder,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := user.NewUser(id, tc.username, "alice@example.com", tc.role, tc.reminderHours, nil)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestUser_Roles(t *testing.T) {
	admin, err := user.NewUser(uuid.New(), "root", "root@example.com", user.RoleAdmin, 0, nil)
	require.NoError(t, err)
	guest, err := user.NewUser(uuid.New(), "visitor", "visitor@example.com", user.RoleGuest, 0, nil)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsGuest())
	assert.True(t, guest.IsGuest())
	assert.False(t, guest.IsAdmin())
}

func TestUser_Reminders(t *testing.T) {
	dedicated := "reminders@example.com"

	t.Run("opt-in follows reminder hours", func(t *testing.T) {
		on, err := user.NewUser(uuid.New(), "alice", "alice@example.com", user.RoleResident, 2, nil)
		require.NoError(t, err)
		off, err := user.NewUser(uuid.New(), "bob", "bob@example.com", user.RoleResident, 0, nil)
		require.NoError(t, err)

		assert.True(t, on.IsReminderOn())
		assert.False(t, off.IsReminderOn())
	})

	t.Run("address falls back to the account email", func(t *testing.T) {
		empty := ""
		testCases := []struct {
			name          string
			reminderEmail *string
			want          string
		}{
			{name: "dedicated address wins", reminderEmail: &dedicated, want: dedicated},
			{name: "nil falls back", reminderEmail: nil, want: "alice@example.com"},
			{name: "empty string falls back", reminderEmail: &empty, want: "alice@example.com"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				u, err := user.NewUser(uuid.New(), "alice", "alice@example.com", user.RoleResident, 2, tc.reminderEmail)
				require.NoError(t, err)
				assert.Equal(t, tc.want, u.ReminderAddress())
			})
		}
	})
}
