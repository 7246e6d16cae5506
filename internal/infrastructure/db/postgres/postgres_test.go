package postgres

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cras-office/agenda/internal/core/ports"
	"github.com/cras-office/agenda/internal/infrastructure/db/postgres/migrations"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	raw, err := fs.ReadFile(migrations.Migrations, files[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "-- +goose Up"))
	assert.True(t, strings.Contains(string(raw), "cras_documents"))
}

// TestStore_Roundtrip runs against a live database named by
// CRAS_TEST_DATABASE_URL and is skipped otherwise.
func TestStore_Roundtrip(t *testing.T) {
	url := os.Getenv("CRAS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("CRAS_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := Connect(ctx, Config{URL: url})
	require.NoError(t, err)
	defer pool.Close()

	s := NewStore(pool)
	key := "test_" + ports.KeyUsers
	t.Cleanup(func() { _ = s.Remove(context.Background(), key) })

	require.NoError(t, s.Write(ctx, key, []byte(`[1]`)))
	require.NoError(t, s.Write(ctx, key, []byte(`[2]`)))

	v, ok, err := s.Read(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[2]`, string(v))

	require.NoError(t, s.Remove(ctx, key))
	_, ok, err = s.Read(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
