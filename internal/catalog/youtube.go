package catalog

import "fmt"

// YouTubeThumbnailURL derives the thumbnail for a YouTube id. Derived values
// overwrite whatever was cached whenever a video is (re)inserted.
func YouTubeThumbnailURL(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", youtubeID)
}

// YouTubeEmbedURL derives the embeddable player URL for a YouTube id.
func YouTubeEmbedURL(youtubeID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", youtubeID)
}
