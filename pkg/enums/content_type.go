package enums

import "fmt"

// ContentType discriminates watchlist entries between paid movies and free music videos.
type ContentType string

const (
	ContentTypeMovie      ContentType = "movie"
	ContentTypeMusicVideo ContentType = "music_video"
)

var validContentTypes = []ContentType{
	ContentTypeMovie,
	ContentTypeMusicVideo,
}

// String implements fmt.Stringer.
func (c ContentType) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c ContentType) IsValid() bool {
	for _, candidate := range validContentTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContentType converts raw input into a ContentType.
func ParseContentType(value string) (ContentType, error) {
	for _, candidate := range validContentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid content type %q", value)
}
