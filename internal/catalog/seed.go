package catalog

import "time"

// seedMovies is the fixed first-run catalog used when both the remote table
// and the local cache are empty.
func seedMovies(now time.Time) []Movie {
	return []Movie{
		{
			ID:           "1",
			Title:        "Because I Got High",
			Description:  "The classic hit that started it all. Experience the story behind the Grammy-nominated song.",
			VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			ThumbnailURL: "https://images.unsplash.com/photo-1574267432644-f610a4b6c7c8?w=800",
			Duration:     180,
			IsNew:        true,
			IsPremium:    true,
			UploadedAt:   now,
		},
		{
			ID:           "2",
			Title:        "Crazy Rap",
			Description:  "The controversial classic that made waves across the music industry.",
			VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			ThumbnailURL: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800",
			Duration:     240,
			IsNew:        true,
			IsPremium:    true,
			UploadedAt:   now,
		},
		{
			ID:           "3",
			Title:        "Palmdale",
			Description:  "A journey through the streets of Palmdale with Afroman.",
			VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			ThumbnailURL: "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=800",
			Duration:     200,
			IsNew:        false,
			IsPremium:    true,
			UploadedAt:   now,
		},
	}
}

// seedMusicVideos is the fixed free promotional catalog, seeded once.
func seedMusicVideos(now time.Time) []MusicVideo {
	videos := []MusicVideo{
		{
			ID:        "because-i-got-high",
			Title:     "Because I Got High",
			Artist:    "Afroman",
			YouTubeID: "WeYsTmIzjkw",
			Duration:  198,
			AddedAt:   now,
		},
		{
			ID:        "crazy-rap",
			Title:     "Crazy Rap (Colt 45 & 2 Zig Zags)",
			Artist:    "Afroman",
			YouTubeID: "Tg3C0nvenro",
			Duration:  243,
			AddedAt:   now,
		},
	}
	for i := range videos {
		videos[i].ThumbnailURL = YouTubeThumbnailURL(videos[i].YouTubeID)
		videos[i].EmbedURL = YouTubeEmbedURL(videos[i].YouTubeID)
	}
	return videos
}
