//go:build db
// +build db

package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/afromanapp/afroman-backend/pkg/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("AFROMAN_DB_DSN")
	if dsn == "" {
		t.Skip("AFROMAN_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open test db")
	return conn
}

func TestRepositoryMovieFlow(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		_ = tx.Rollback()
	})

	repo := NewRepository(tx)
	ctx := context.Background()

	older := &models.Movie{
		ID:         uuid.New(),
		Title:      "Older Release",
		VideoURL:   "https://cdn.example/older.mp4",
		UploadedAt: time.Now().UTC().Add(-48 * time.Hour),
		CreatedAt:  time.Now().UTC().Add(-48 * time.Hour),
	}
	require.NoError(t, repo.Insert(ctx, older))

	newer := &models.Movie{
		ID:         uuid.New(),
		Title:      "Newer Release",
		VideoURL:   "https://cdn.example/newer.mp4",
		UploadedAt: time.Now().UTC(),
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Insert(ctx, newer))

	rows, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, newer.ID, rows[0].ID, "expected newest row first")

	require.NoError(t, repo.Delete(ctx, older.ID))
	var count int64
	require.NoError(t, tx.Model(&models.Movie{}).Where("id = ?", older.ID).Count(&count).Error)
	assert.Zero(t, count, "expected row deleted")
}
