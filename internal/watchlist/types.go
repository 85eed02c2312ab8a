package watchlist

import (
	"time"

	"github.com/afromanapp/afroman-backend/pkg/enums"
)

// Item is one watchlist membership record. AddedAt round-trips through the
// slot store as RFC3339 text.
type Item struct {
	ID      string            `json:"id"`
	Type    enums.ContentType `json:"type"`
	AddedAt time.Time         `json:"added_at"`
}

// Snapshot is the whole-watchlist state persisted on every mutation.
type Snapshot struct {
	Items []Item `json:"items"`
}
