package entitlement

import (
	"context"

	"github.com/afromanapp/afroman-backend/pkg/db/models"
	"github.com/afromanapp/afroman-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository reads the remote subscriptions table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a subscription repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindNewestActive returns the most recently created active-status row for the
// user. gorm.ErrRecordNotFound when none exists.
func (r *Repository) FindNewestActive(ctx context.Context, userID string) (*models.Subscription, error) {
	var row models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, enums.SubscriptionStatusActive).
		Order("created_at DESC").
		First(&row).
		Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
