package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/casalista/backend/internal/pkg/codec"
)

// testSchema mirrors the production schema. price is TEXT rather than
// NUMERIC: sqlite's numeric affinity would strip trailing zeros and break
// the exact-decimal contract the tests assert.
var testSchema = []string{
	`CREATE TABLE owners (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		phone TEXT,
		email TEXT,
		image_url TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE properties (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		address TEXT NOT NULL,
		price TEXT NOT NULL,
		bedrooms INTEGER NOT NULL,
		bathrooms INTEGER NOT NULL,
		area REAL,
		image_url TEXT,
		owner_id TEXT REFERENCES owners (id),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE enquiries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		message TEXT NOT NULL,
		property_id TEXT NOT NULL REFERENCES properties (id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL
	)`,
}

func mustPrice(t *testing.T, s string) codec.Price {
	t.Helper()
	p, err := codec.DecodePrice(s)
	require.NoError(t, err)
	return p
}

// testDB opens a per-test in-memory database and creates the schema.
func testDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	sqldb, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	sqldb.SetMaxIdleConns(1000)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, ddl := range testSchema {
		_, err := db.ExecContext(ctx, ddl)
		require.NoError(t, err)
	}

	return db
}
