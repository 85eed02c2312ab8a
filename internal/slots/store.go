package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	redisclient "github.com/afromanapp/afroman-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

// Slot names mirror the storage keys the mobile client kept on device.
const (
	SlotUser         = "user"
	SlotMovies       = "movies"
	SlotMusicVideos  = "music_videos"
	SlotCart         = "cart"
	SlotWatchlist    = "watchlist"
	SlotSubscription = "subscription"
)

// Store persists opaque JSON blobs under fixed per-device slot names. A missing
// slot is reported as absent, never as an error.
type Store interface {
	Get(ctx context.Context, deviceID, slot string, out any) (bool, error)
	Set(ctx context.Context, deviceID, slot string, value any) error
	Clear(ctx context.Context, deviceID, slot string) error
}

type blobStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type keyer interface {
	SlotKey(deviceID, slot string) string
}

type redisStore struct {
	blobs blobStore
	keyer keyer
}

// NewRedisStore builds a slot store on top of the shared redis client.
func NewRedisStore(client *redisclient.Client) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &redisStore{blobs: client, keyer: client}, nil
}

func (s *redisStore) Get(ctx context.Context, deviceID, slot string, out any) (bool, error) {
	if err := validateSlotArgs(deviceID, slot); err != nil {
		return false, err
	}
	raw, err := s.blobs.Get(ctx, s.keyer.SlotKey(deviceID, slot))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("reading slot %s: %w", slot, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decoding slot %s: %w", slot, err)
	}
	return true, nil
}

func (s *redisStore) Set(ctx context.Context, deviceID, slot string, value any) error {
	if err := validateSlotArgs(deviceID, slot); err != nil {
		return err
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding slot %s: %w", slot, err)
	}
	if err := s.blobs.Set(ctx, s.keyer.SlotKey(deviceID, slot), payload, 0); err != nil {
		return fmt.Errorf("writing slot %s: %w", slot, err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context, deviceID, slot string) error {
	if err := validateSlotArgs(deviceID, slot); err != nil {
		return err
	}
	if err := s.blobs.Del(ctx, s.keyer.SlotKey(deviceID, slot)); err != nil {
		return fmt.Errorf("clearing slot %s: %w", slot, err)
	}
	return nil
}

func validateSlotArgs(deviceID, slot string) error {
	if strings.TrimSpace(deviceID) == "" {
		return fmt.Errorf("device id is required")
	}
	if strings.TrimSpace(slot) == "" {
		return fmt.Errorf("slot name is required")
	}
	return nil
}
