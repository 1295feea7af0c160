//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, username, email, role string, reminderHours int) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, username, email, role, reminder_hours) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (username) DO NOTHING",
		userID, username, email, role, reminderHours)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

func CreateTestMachine(t *testing.T, db DBLike, name, code, status string) uuid.UUID {
	t.Helper()

	machineID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO machines (id, name, code, status) VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING",
		machineID, name, code, status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM machines WHERE code = $1", code).Scan(&machineID)
	}

	return machineID
}

func CreateTestSlot(t *testing.T, db DBLike, machineID uuid.UUID, slotNumber int, timeRange string) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO time_slots (id, machine_id, slot_number, time_range) VALUES ($1, $2, $3, $4)",
		slotID, machineID, slotNumber, timeRange)
	require.NoError(t, err)

	return slotID
}

// SeedMachinePark inserts one machine with three standard slots and
// returns the machine ID plus slot IDs in slot-number order.
func SeedMachinePark(t *testing.T, db DBLike) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	machineID := CreateTestMachine(t, db, "Washer A", "washer-a", "usable")
	slots := []uuid.UUID{
		CreateTestSlot(t, db, machineID, 1, "06:00-10:00"),
		CreateTestSlot(t, db, machineID, 2, "10:00-14:00"),
		CreateTestSlot(t, db, machineID, 3, "18:00-00:00"),
	}
	return machineID, slots
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
