package entitlement

import (
	"time"

	"github.com/afromanapp/afroman-backend/pkg/enums"
)

// User is the cached device identity. HasSubscription is never trusted as
// stored; it is recomputed from the subscriptions table on load, login and
// refresh, and the cached copy is rewritten whenever the fresh value diverges.
type User struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	IsAdmin               bool       `json:"is_admin"`
	HasSubscription       bool       `json:"has_subscription"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
}

// Status is the recomputed entitlement pair. ExpiresAt is nil unless the
// subscription is currently active.
type Status struct {
	HasSubscription bool       `json:"has_subscription"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// Session is the merged result exposed to callers.
type Session struct {
	User  *User                  `json:"user,omitempty"`
	State enums.EntitlementState `json:"state"`
}

type userCache struct {
	User *User `json:"user"`
}
