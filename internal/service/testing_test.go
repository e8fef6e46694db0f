package service

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/casalista/backend/internal/app/appconfig"
	"github.com/casalista/backend/internal/model/cache"
	"github.com/casalista/backend/internal/repo"
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

func testConfig(t *testing.T) *appconfig.Config {
	t.Helper()

	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			UploadDir: t.TempDir(),
		},
	}
}

type testEnv struct {
	DB       *bun.DB
	Conf     *appconfig.Config
	Property *Property
	Owner    *Owner
	Enquiry  *Enquiry

	PropertyRepo *repo.Property
	OwnerRepo    *repo.Owner
	EnquiryRepo  *repo.Enquiry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// per-test cache state; the caches are package globals
	cache.Initialize()

	db := testDB(t)
	conf := testConfig(t)

	propertyRepo := repo.NewProperty(db)
	ownerRepo := repo.NewOwner(db)
	enquiryRepo := repo.NewEnquiry(db)

	asset := NewAsset(conf)
	auth := NewAuthorizer(conf)

	return &testEnv{
		DB:           db,
		Conf:         conf,
		Property:     NewProperty(propertyRepo, ownerRepo, asset, auth),
		Owner:        NewOwner(ownerRepo, propertyRepo, asset, auth),
		Enquiry:      NewEnquiry(enquiryRepo),
		PropertyRepo: propertyRepo,
		OwnerRepo:    ownerRepo,
		EnquiryRepo:  enquiryRepo,
	}
}

// fileHeader builds a real multipart file part the way fiber's FormFile
// would hand it to a controller.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename)}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}
