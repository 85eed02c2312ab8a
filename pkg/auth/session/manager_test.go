package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) AdminSessionKey(accessID string) string {
	return fmt.Sprintf("sess:%s", accessID)
}

func newTestManager(store *mockStore) *Manager {
	return &Manager{
		store: store,
		keyer: store,
		ttl:   time.Hour,
	}
}

func TestManagerCreateAndCheck(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	if err := manager.Create(ctx, "access-123"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, exists := store.data[store.AdminSessionKey("access-123")]; !exists {
		t.Fatal("expected session key in store")
	}

	ok, err := manager.HasSession(ctx, "access-123")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("expected live session")
	}

	ok, err = manager.HasSession(ctx, "access-456")
	if err != nil {
		t.Fatalf("has session for unknown id: %v", err)
	}
	if ok {
		t.Fatal("expected no session for unknown id")
	}
}

func TestManagerCreateRequiresAccessID(t *testing.T) {
	manager := newTestManager(newMockStore())
	if err := manager.Create(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank access id")
	}
}

func TestManagerHasSessionBlankIDIsFalse(t *testing.T) {
	manager := newTestManager(newMockStore())
	ok, err := manager.HasSession(context.Background(), "")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected false for blank id")
	}
}

func TestManagerHasSessionSurfacesStoreErrors(t *testing.T) {
	store := newMockStore()
	store.getErr = errors.New("redis down")
	manager := newTestManager(store)

	if _, err := manager.HasSession(context.Background(), "access-123"); err == nil {
		t.Fatal("expected store error to surface")
	}
}

func TestManagerRevoke(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)
	ctx := context.Background()

	if err := manager.Create(ctx, "access-123"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := manager.Revoke(ctx, "access-123"); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	ok, err := manager.HasSession(ctx, "access-123")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected revoked session to be gone")
	}

	// Revoking a blank id is a no-op.
	if err := manager.Revoke(ctx, ""); err != nil {
		t.Fatalf("revoke blank: %v", err)
	}
}
