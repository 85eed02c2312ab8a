package entitlement

import (
	"context"
	"strings"
	"time"

	"github.com/afromanapp/afroman-backend/internal/slots"
	"github.com/afromanapp/afroman-backend/pkg/db/models"
	"github.com/afromanapp/afroman-backend/pkg/enums"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

type subscriptionRepository interface {
	FindNewestActive(ctx context.Context, userID string) (*models.Subscription, error)
}

// Service resolves the cached device identity against the remote
// subscriptions table.
type Service interface {
	LoadUser(ctx context.Context, deviceID string) (Session, error)
	Login(ctx context.Context, deviceID string, user User) (Session, error)
	Logout(ctx context.Context, deviceID string) error
	Refresh(ctx context.Context, deviceID string) (Session, error)
	CheckSubscription(ctx context.Context, userID string) Status
}

// ServiceParams groups dependencies for the entitlement service.
type ServiceParams struct {
	Repo   subscriptionRepository
	Slots  slots.Store
	Logger *logger.Logger
	Now    func() time.Time
}

type service struct {
	repo  subscriptionRepository
	slots slots.Store
	logg  *logger.Logger
	now   func() time.Time
}

// NewService builds an entitlement service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subscription repository is required")
	}
	if params.Slots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slot store is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		repo:  params.Repo,
		slots: params.Slots,
		logg:  params.Logger,
		now:   params.Now,
	}, nil
}

// LoadUser reads the cached identity and recomputes its entitlement. When the
// fresh value diverges from the cached flag, the cache is rewritten before the
// merged result is returned.
func (s *service) LoadUser(ctx context.Context, deviceID string) (Session, error) {
	user, found := s.loadCached(ctx, deviceID)
	if !found || user == nil {
		return Session{State: enums.EntitlementStateUnauthenticated}, nil
	}

	status := s.CheckSubscription(ctx, user.ID)
	if user.HasSubscription != status.HasSubscription || !equalExpiry(user.SubscriptionExpiresAt, status.ExpiresAt) {
		user.HasSubscription = status.HasSubscription
		user.SubscriptionExpiresAt = status.ExpiresAt
		s.persistUser(ctx, deviceID, user)
	}
	s.persistStatus(ctx, deviceID, status)

	return Session{User: user, State: stateFor(status)}, nil
}

// Login re-validates entitlement before caching, so a stale flag handed in by
// the caller (e.g. right after a payment-success redirect) is never trusted.
func (s *service) Login(ctx context.Context, deviceID string, user User) (Session, error) {
	if strings.TrimSpace(user.ID) == "" {
		return Session{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	status := s.CheckSubscription(ctx, user.ID)
	user.HasSubscription = status.HasSubscription
	user.SubscriptionExpiresAt = status.ExpiresAt

	s.persistUser(ctx, deviceID, &user)
	s.persistStatus(ctx, deviceID, status)

	return Session{User: &user, State: stateFor(status)}, nil
}

// Logout clears the cached identity only. Cart and watchlist slots persist
// across logout.
func (s *service) Logout(ctx context.Context, deviceID string) error {
	if err := s.slots.Clear(ctx, deviceID, slots.SlotUser); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "entitlement.logout user slot clear failed", err)
		}
		return err
	}
	if err := s.slots.Clear(ctx, deviceID, slots.SlotSubscription); err != nil && s.logg != nil {
		s.logg.Error(ctx, "entitlement.logout subscription slot clear failed", err)
	}
	return nil
}

// Refresh is the user-triggered re-check. Without a cached user it no-ops and
// reports unauthenticated.
func (s *service) Refresh(ctx context.Context, deviceID string) (Session, error) {
	user, found := s.loadCached(ctx, deviceID)
	if !found || user == nil {
		return Session{State: enums.EntitlementStateUnauthenticated}, nil
	}

	status := s.CheckSubscription(ctx, user.ID)
	user.HasSubscription = status.HasSubscription
	user.SubscriptionExpiresAt = status.ExpiresAt
	s.persistUser(ctx, deviceID, user)
	s.persistStatus(ctx, deviceID, status)

	return Session{User: user, State: stateFor(status)}, nil
}

// CheckSubscription queries the newest active row and computes liveness from
// its expiry. Every query error, including not-found, collapses to a negative
// result rather than surfacing to the caller.
func (s *service) CheckSubscription(ctx context.Context, userID string) Status {
	row, err := s.repo.FindNewestActive(ctx, userID)
	if err != nil || row == nil {
		return Status{}
	}
	if !row.ExpiresAt.After(s.now()) {
		return Status{}
	}
	expires := row.ExpiresAt
	return Status{HasSubscription: true, ExpiresAt: &expires}
}

func (s *service) loadCached(ctx context.Context, deviceID string) (*User, bool) {
	var cache userCache
	found, err := s.slots.Get(ctx, deviceID, slots.SlotUser, &cache)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "entitlement.user cache load failed", err)
		}
		return nil, false
	}
	if !found {
		return nil, false
	}
	return cache.User, cache.User != nil
}

func (s *service) persistUser(ctx context.Context, deviceID string, user *User) {
	if err := s.slots.Set(ctx, deviceID, slots.SlotUser, userCache{User: user}); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "entitlement.user cache persist failed", err)
		}
	}
}

func (s *service) persistStatus(ctx context.Context, deviceID string, status Status) {
	if err := s.slots.Set(ctx, deviceID, slots.SlotSubscription, status); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "entitlement.subscription cache persist failed", err)
		}
	}
}

func stateFor(status Status) enums.EntitlementState {
	if status.HasSubscription {
		return enums.EntitlementStateActive
	}
	return enums.EntitlementStateNoSubscription
}

func equalExpiry(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
