package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderwise/backend/migrations"
	"github.com/wanderwise/backend/testutil"
)

var schemaTables = []string{
	"users", "auth_accounts", "destinations", "itineraries", "itinerary_destinations",
}

// TestMigrations applies every migration, checks the tables exist, rolls
// everything back, and checks they are gone. It finishes by re-applying the
// migrations so packages tested afterwards find the schema in place.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()

	// Another package's TestMain may already have migrated this database.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, 3)
	for _, table := range schemaTables {
		assert.True(t, tableExists(t, db, table), "expected table %q to exist", table)
	}

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	for _, table := range schemaTables {
		assert.False(t, tableExists(t, db, table), "expected table %q to be dropped", table)
	}

	_, err = provider.Up(ctx)
	require.NoError(t, err, "goose re-up")
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists))
	return exists
}
