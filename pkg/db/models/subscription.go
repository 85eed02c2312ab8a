package models

import (
	"time"

	"github.com/afromanapp/afroman-backend/pkg/enums"
	"github.com/google/uuid"
)

// Subscription is a row in the remote subscriptions table. Rows are written by
// the payment-confirmation backend function; this service only reads them.
type Subscription struct {
	ID        uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    string                   `gorm:"column:user_id;not null;index:subscriptions_user_id_idx"`
	Status    enums.SubscriptionStatus `gorm:"column:status;not null;default:'active'"`
	ExpiresAt time.Time                `gorm:"column:expires_at;not null"`
	CreatedAt time.Time                `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the remote table name.
func (Subscription) TableName() string { return "subscriptions" }
