package catalog

import (
	"time"

	"github.com/afromanapp/afroman-backend/pkg/db/models"
	"github.com/afromanapp/afroman-backend/pkg/enums"
)

// Movie is the client-facing premium content shape. IDs are plain strings so
// seeded first-run content and remote UUID rows share one representation.
type Movie struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     int       `json:"duration"`
	IsNew        bool      `json:"is_new"`
	IsPremium    bool      `json:"is_premium"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// MusicVideo is free promotional content. It never exists remotely; the
// thumbnail and embed URLs are derived from the YouTube id, not stored.
type MusicVideo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Artist       string    `json:"artist"`
	YouTubeID    string    `json:"youtube_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	EmbedURL     string    `json:"embed_url"`
	Duration     int       `json:"duration"`
	AddedAt      time.Time `json:"added_at"`
}

// SyncResult reports the movies plus which tier of the remote > cache > seed
// precedence actually satisfied the load.
type SyncResult struct {
	Movies []Movie             `json:"movies"`
	Source enums.CatalogSource `json:"source"`
}

// MirrorStatus is the outcome of a two-phase local+remote mutation. RemoteOK
// false with LocalOK true means the caches have diverged from the remote table.
type MirrorStatus struct {
	LocalOK  bool `json:"local_ok"`
	RemoteOK bool `json:"remote_ok"`
}

// movieCache and musicVideoCache are the slot payloads.
type movieCache struct {
	Movies []Movie `json:"movies"`
}

type musicVideoCache struct {
	Videos []MusicVideo `json:"videos"`
}

func movieFromModel(m models.Movie) Movie {
	return Movie{
		ID:           m.ID.String(),
		Title:        m.Title,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		IsNew:        m.IsNew,
		IsPremium:    m.IsPremium,
		UploadedAt:   m.UploadedAt,
	}
}
