package slots

import (
	"context"
	"errors"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeBlobs struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{data: map[string]string{}}
}

func (f *fakeBlobs) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = string(value.([]byte))
	return nil
}

func (f *fakeBlobs) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	raw, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return raw, nil
}

func (f *fakeBlobs) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) SlotKey(deviceID, slot string) string {
	return "afro:slot:" + deviceID + ":" + slot
}

func newTestStore(blobs *fakeBlobs) Store {
	return &redisStore{blobs: blobs, keyer: fakeKeyer{}}
}

type payload struct {
	Value string `json:"value"`
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(newFakeBlobs())
	ctx := context.Background()

	if err := store.Set(ctx, "device-1", SlotCart, payload{Value: "hello"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out payload
	found, err := store.Get(ctx, "device-1", SlotCart, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected slot to exist")
	}
	if out.Value != "hello" {
		t.Fatalf("expected hello, got %q", out.Value)
	}
}

func TestStore_MissingSlotIsAbsentNotError(t *testing.T) {
	store := newTestStore(newFakeBlobs())

	var out payload
	found, err := store.Get(context.Background(), "device-1", SlotWatchlist, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected absent slot")
	}
}

func TestStore_DevicesAreIsolated(t *testing.T) {
	store := newTestStore(newFakeBlobs())
	ctx := context.Background()

	if err := store.Set(ctx, "device-1", SlotCart, payload{Value: "mine"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out payload
	found, err := store.Get(ctx, "device-2", SlotCart, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected other device's slot to be empty")
	}
}

func TestStore_ClearRemovesSlot(t *testing.T) {
	store := newTestStore(newFakeBlobs())
	ctx := context.Background()

	if err := store.Set(ctx, "device-1", SlotUser, payload{Value: "id"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Clear(ctx, "device-1", SlotUser); err != nil {
		t.Fatalf("clear: %v", err)
	}

	var out payload
	found, err := store.Get(ctx, "device-1", SlotUser, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected cleared slot to be absent")
	}
}

func TestStore_ValidatesArgs(t *testing.T) {
	store := newTestStore(newFakeBlobs())
	ctx := context.Background()

	if _, err := store.Get(ctx, "", SlotCart, &payload{}); err == nil {
		t.Fatal("expected error for empty device id")
	}
	if err := store.Set(ctx, "device-1", " ", payload{}); err == nil {
		t.Fatal("expected error for empty slot name")
	}
}

func TestStore_SurfacesBackendErrors(t *testing.T) {
	blobs := newFakeBlobs()
	blobs.getErr = errors.New("redis down")
	blobs.setErr = errors.New("redis down")
	store := newTestStore(blobs)
	ctx := context.Background()

	if _, err := store.Get(ctx, "device-1", SlotCart, &payload{}); err == nil {
		t.Fatal("expected get error")
	}
	if err := store.Set(ctx, "device-1", SlotCart, payload{}); err == nil {
		t.Fatal("expected set error")
	}
}
