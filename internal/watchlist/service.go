package watchlist

import (
	"context"
	"strings"
	"time"

	"github.com/afromanapp/afroman-backend/internal/slots"
	"github.com/afromanapp/afroman-backend/pkg/enums"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

// Service exposes watchlist membership. Membership is keyed by content id
// alone; the content type only annotates the stored record.
type Service interface {
	List(ctx context.Context, deviceID string) ([]Item, error)
	Contains(ctx context.Context, deviceID, contentID string) (bool, error)
	Toggle(ctx context.Context, deviceID, contentID string, contentType enums.ContentType) (bool, error)
}

// ServiceParams groups dependencies for the watchlist service.
type ServiceParams struct {
	Slots  slots.Store
	Logger *logger.Logger
	Now    func() time.Time
}

type service struct {
	slots slots.Store
	logg  *logger.Logger
	now   func() time.Time
}

// NewService builds a watchlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Slots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slot store is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		slots: params.Slots,
		logg:  params.Logger,
		now:   params.Now,
	}, nil
}

// List returns all membership records for the device.
func (s *service) List(ctx context.Context, deviceID string) ([]Item, error) {
	return s.load(ctx, deviceID), nil
}

// Contains reports membership by content id only.
func (s *service) Contains(ctx context.Context, deviceID, contentID string) (bool, error) {
	for _, item := range s.load(ctx, deviceID) {
		if item.ID == contentID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips membership for the content id and reports whether the call
// added (true) or removed (false) the record.
func (s *service) Toggle(ctx context.Context, deviceID, contentID string, contentType enums.ContentType) (bool, error) {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "content id is required")
	}
	if !contentType.IsValid() {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "invalid content type")
	}

	items := s.load(ctx, deviceID)

	kept := items[:0]
	removed := false
	for _, item := range items {
		if item.ID == contentID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}

	if !removed {
		kept = append(kept, Item{
			ID:      contentID,
			Type:    contentType,
			AddedAt: s.now().UTC(),
		})
	}

	s.persist(ctx, deviceID, kept)
	return !removed, nil
}

func (s *service) load(ctx context.Context, deviceID string) []Item {
	var snapshot Snapshot
	found, err := s.slots.Get(ctx, deviceID, slots.SlotWatchlist, &snapshot)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "watchlist.load failed, starting empty", err)
		}
		return []Item{}
	}
	if !found {
		return []Item{}
	}
	return snapshot.Items
}

func (s *service) persist(ctx context.Context, deviceID string, items []Item) {
	if err := s.slots.Set(ctx, deviceID, slots.SlotWatchlist, Snapshot{Items: items}); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "watchlist.persist failed", err)
		}
	}
}
