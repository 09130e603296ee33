package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cleansweep-app/timeclock-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var sharedTestDB *database.DB

// testDatabase connects once per run. The tests expect a disposable database
// with the application schema already applied and are skipped unless
// TEST_DATABASE_URL points at one.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if sharedTestDB == nil {
		db, err := database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
		sharedTestDB = db
	}

	return sharedTestDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()

	tables := []string{
		"time_logs",
		"refresh_tokens",
		"shifts",
		"sites",
		"users",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}

func createTestWorker(t *testing.T, ctx context.Context, db *database.DB, email string) string {
	t.Helper()

	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, role, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, '$2a$10$test', 'Test Worker', 'worker', true, NOW(), NOW())
		RETURNING id
	`, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestSite(t *testing.T, ctx context.Context, db *database.DB, name string) string {
	t.Helper()

	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO sites (id, name, latitude, longitude, radius_meters, created_at, updated_at)
		VALUES (uuidv7(), $1, 52.370216, 4.895168, 150, NOW(), NOW())
		RETURNING id
	`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestShift(t *testing.T, ctx context.Context, db *database.DB, siteID, workerID string, startsAt time.Time) string {
	t.Helper()

	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO shifts (id, site_id, worker_id, date, starts_at, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3::date, $3, 'planned', NOW(), NOW())
		RETURNING id
	`, siteID, workerID, startsAt).Scan(&id)
	require.NoError(t, err)
	return id
}
