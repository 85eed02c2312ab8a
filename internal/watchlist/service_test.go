package watchlist

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/afromanapp/afroman-backend/pkg/enums"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
)

type memSlots struct {
	blobs map[string][]byte
}

func newMemSlots() *memSlots {
	return &memSlots{blobs: map[string][]byte{}}
}

func (m *memSlots) key(deviceID, slot string) string {
	return deviceID + ":" + slot
}

func (m *memSlots) Get(ctx context.Context, deviceID, slot string, out any) (bool, error) {
	raw, ok := m.blobs[m.key(deviceID, slot)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *memSlots) Set(ctx context.Context, deviceID, slot string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.blobs[m.key(deviceID, slot)] = raw
	return nil
}

func (m *memSlots) Clear(ctx context.Context, deviceID, slot string) error {
	delete(m.blobs, m.key(deviceID, slot))
	return nil
}

func newTestService(t *testing.T, store *memSlots, now func() time.Time) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Slots: store, Now: now})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestService_ToggleAddsThenRemoves(t *testing.T) {
	svc := newTestService(t, newMemSlots(), nil)
	ctx := context.Background()

	added, err := svc.Toggle(ctx, "device-1", "1", enums.ContentTypeMovie)
	if err != nil {
		t.Fatalf("toggle add: %v", err)
	}
	if !added {
		t.Fatal("expected first toggle to add")
	}

	in, err := svc.Contains(ctx, "device-1", "1")
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if !in {
		t.Fatal("expected membership after add")
	}

	added, err = svc.Toggle(ctx, "device-1", "1", enums.ContentTypeMovie)
	if err != nil {
		t.Fatalf("toggle remove: %v", err)
	}
	if added {
		t.Fatal("expected second toggle to remove")
	}

	in, err = svc.Contains(ctx, "device-1", "1")
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if in {
		t.Fatal("expected no membership after remove")
	}
}

func TestService_ToggleTwiceIsIdentity(t *testing.T) {
	store := newMemSlots()
	svc := newTestService(t, store, nil)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "device-1", "keep", enums.ContentTypeMusicVideo); err != nil {
		t.Fatalf("seed toggle: %v", err)
	}

	if _, err := svc.Toggle(ctx, "device-1", "flip", enums.ContentTypeMovie); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if _, err := svc.Toggle(ctx, "device-1", "flip", enums.ContentTypeMovie); err != nil {
		t.Fatalf("toggle off: %v", err)
	}

	items, err := svc.List(ctx, "device-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != "keep" {
		t.Fatalf("expected only the untouched item, got %+v", items)
	}
}

func TestService_MembershipIgnoresContentType(t *testing.T) {
	svc := newTestService(t, newMemSlots(), nil)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "device-1", "1", enums.ContentTypeMovie); err != nil {
		t.Fatalf("toggle add: %v", err)
	}

	// Same id with a different type still removes: membership is keyed by id only.
	added, err := svc.Toggle(ctx, "device-1", "1", enums.ContentTypeMusicVideo)
	if err != nil {
		t.Fatalf("toggle with other type: %v", err)
	}
	if added {
		t.Fatal("expected removal despite differing content type")
	}
}

func TestService_ToggleValidation(t *testing.T) {
	svc := newTestService(t, newMemSlots(), nil)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "device-1", "  ", enums.ContentTypeMovie); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for blank id, got %v", err)
	}
	if _, err := svc.Toggle(ctx, "device-1", "1", enums.ContentType("banana")); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for bad type, got %v", err)
	}
}

func TestService_TimestampsSurviveRoundTrip(t *testing.T) {
	store := newMemSlots()
	fixed := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	svc := newTestService(t, store, func() time.Time { return fixed })
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "device-1", "1", enums.ContentTypeMovie); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// Read through a fresh service instance so the value travels the full
	// marshal/unmarshal path.
	reloaded := newTestService(t, store, nil)
	items, err := reloaded.List(ctx, "device-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].AddedAt.Equal(fixed) {
		t.Fatalf("expected added_at %s, got %s", fixed, items[0].AddedAt)
	}
	if items[0].Type != enums.ContentTypeMovie {
		t.Fatalf("expected movie type, got %s", items[0].Type)
	}
}
