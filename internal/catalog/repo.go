package catalog

import (
	"context"

	"github.com/afromanapp/afroman-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository reads and mirrors the remote movies table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a movie repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListNewestFirst returns every premium content row ordered by created_at desc.
func (r *Repository) ListNewestFirst(ctx context.Context) ([]models.Movie, error) {
	var rows []models.Movie
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert writes one movie row.
func (r *Repository) Insert(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

// Delete removes the movie row by id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Movie{}).
		Error
}
