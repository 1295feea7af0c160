package repository

import (
	"context"

	"slotify/internal/domain/user"
	"slotify/internal/infra"
	"slotify/internal/infra/db"
	"slotify/internal/pkg/pgconv"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserRepository is the identity directory read interface.
type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var (
		userID          uuid.UUID
		username, email string
		role            string
		reminderHours   int
		reminderEmail   pgtype.Text
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, role, reminder_hours, reminder_email
		 FROM users WHERE id = $1`, id,
	).Scan(&userID, &username, &email, &role, &reminderHours, &reminderEmail)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return userToSnapshot(userID, username, email, role, reminderHours, pgconv.StringPtrFromPgtype(reminderEmail))
}

// userToSnapshot rebuilds the identity entity so directory invariants
// are re-checked before the row reaches the booking core.
func userToSnapshot(id uuid.UUID, username, email, role string, reminderHours int, reminderEmail *string) (*shared.UserSnapshot, error) {
	u, err := user.NewUser(id, username, email, user.Role(role), reminderHours, reminderEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid user row", err)
	}
	return &shared.UserSnapshot{
		ID:            u.ID(),
		Username:      u.Username(),
		Email:         u.Email(),
		Role:          u.Role().String(),
		ReminderHours: u.ReminderHours(),
		ReminderEmail: reminderEmail,
	}, nil
}
