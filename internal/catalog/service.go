package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/afromanapp/afroman-backend/internal/slots"
	"github.com/afromanapp/afroman-backend/pkg/db/models"
	"github.com/afromanapp/afroman-backend/pkg/enums"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
	"github.com/google/uuid"
)

type movieRepository interface {
	ListNewestFirst(ctx context.Context) ([]models.Movie, error)
	Insert(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service reconciles the remote movies table with the per-device cache and
// owns the always-local free content set.
type Service interface {
	SyncMovies(ctx context.Context, deviceID string) (SyncResult, error)
	MusicVideos(ctx context.Context, deviceID string) ([]MusicVideo, error)
	AddMovie(ctx context.Context, deviceID string, input AddMovieInput) (Movie, MirrorStatus, error)
	DeleteMovie(ctx context.Context, deviceID, movieID string) (MirrorStatus, error)
}

// AddMovieInput is the admin upload payload.
type AddMovieInput struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	Duration     int    `json:"duration" validate:"gte=0"`
	IsNew        bool   `json:"is_new"`
	IsPremium    bool   `json:"is_premium"`
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo   movieRepository
	Slots  slots.Store
	Logger *logger.Logger
	Now    func() time.Time
}

type service struct {
	repo  movieRepository
	slots slots.Store
	logg  *logger.Logger
	now   func() time.Time
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "movie repository is required")
	}
	if params.Slots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slot store is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		repo:  params.Repo,
		slots: params.Slots,
		logg:  params.Logger,
		now:   params.Now,
	}, nil
}

// SyncMovies resolves movies with explicit remote > cache > seed precedence.
// A non-empty remote result is authoritative and overwrites the cache; the
// seed tier persists itself so a second load is served from cache.
func (s *service) SyncMovies(ctx context.Context, deviceID string) (SyncResult, error) {
	rows, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "catalog.sync remote fetch failed, falling back to cache", err)
		}
	} else if len(rows) > 0 {
		movies := make([]Movie, 0, len(rows))
		for _, row := range rows {
			movies = append(movies, movieFromModel(row))
		}
		s.persistMovies(ctx, deviceID, movies)
		return SyncResult{Movies: movies, Source: enums.CatalogSourceRemote}, nil
	}

	cached, found := s.loadMovies(ctx, deviceID)
	if found && len(cached) > 0 {
		return SyncResult{Movies: cached, Source: enums.CatalogSourceCache}, nil
	}

	seeded := seedMovies(s.now().UTC())
	s.persistMovies(ctx, deviceID, seeded)
	return SyncResult{Movies: seeded, Source: enums.CatalogSourceSeed}, nil
}

// MusicVideos returns the always-local free content, seeding it on first use.
func (s *service) MusicVideos(ctx context.Context, deviceID string) ([]MusicVideo, error) {
	var cache musicVideoCache
	found, err := s.slots.Get(ctx, deviceID, slots.SlotMusicVideos, &cache)
	if err != nil && s.logg != nil {
		s.logg.Error(ctx, "catalog.musicvideos load failed, reseeding", err)
	}
	if err == nil && found && len(cache.Videos) > 0 {
		return cache.Videos, nil
	}

	seeded := seedMusicVideos(s.now().UTC())
	if err := s.slots.Set(ctx, deviceID, slots.SlotMusicVideos, musicVideoCache{Videos: seeded}); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "catalog.musicvideos persist failed", err)
		}
	}
	return seeded, nil
}

// AddMovie appends to the device cache and mirrors the row into the remote
// table best-effort. Remote failure leaves the caches divergent; the status
// makes that visible instead of swallowing it.
func (s *service) AddMovie(ctx context.Context, deviceID string, input AddMovieInput) (Movie, MirrorStatus, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Movie{}, MirrorStatus{}, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if strings.TrimSpace(input.VideoURL) == "" {
		return Movie{}, MirrorStatus{}, pkgerrors.New(pkgerrors.CodeValidation, "video url is required")
	}

	id := uuid.New()
	now := s.now().UTC()
	movie := Movie{
		ID:           id.String(),
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		Duration:     input.Duration,
		IsNew:        input.IsNew,
		IsPremium:    input.IsPremium,
		UploadedAt:   now,
	}

	cached, _ := s.loadMovies(ctx, deviceID)
	s.persistMovies(ctx, deviceID, append(cached, movie))
	status := MirrorStatus{LocalOK: true}

	row := models.Movie{
		ID:           id,
		Title:        movie.Title,
		Description:  movie.Description,
		VideoURL:     movie.VideoURL,
		ThumbnailURL: movie.ThumbnailURL,
		Duration:     movie.Duration,
		IsNew:        movie.IsNew,
		IsPremium:    movie.IsPremium,
		UploadedAt:   now,
	}
	if err := s.repo.Insert(ctx, &row); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "catalog.addmovie remote insert failed", err)
		}
	} else {
		status.RemoteOK = true
	}

	return movie, status, nil
}

// DeleteMovie removes the movie from the device cache and issues a best-effort
// remote delete. Seeded ids were never remote, so only UUID ids reach the table.
func (s *service) DeleteMovie(ctx context.Context, deviceID, movieID string) (MirrorStatus, error) {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return MirrorStatus{}, pkgerrors.New(pkgerrors.CodeValidation, "movie id is required")
	}

	cached, _ := s.loadMovies(ctx, deviceID)
	kept := cached[:0]
	for _, movie := range cached {
		if movie.ID == movieID {
			continue
		}
		kept = append(kept, movie)
	}
	s.persistMovies(ctx, deviceID, kept)
	status := MirrorStatus{LocalOK: true}

	if id, err := uuid.Parse(movieID); err == nil {
		if err := s.repo.Delete(ctx, id); err != nil {
			if s.logg != nil {
				s.logg.Error(ctx, "catalog.deletemovie remote delete failed", err)
			}
		} else {
			status.RemoteOK = true
		}
	}

	return status, nil
}

func (s *service) loadMovies(ctx context.Context, deviceID string) ([]Movie, bool) {
	var cache movieCache
	found, err := s.slots.Get(ctx, deviceID, slots.SlotMovies, &cache)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "catalog.movies cache load failed", err)
		}
		return []Movie{}, false
	}
	if !found {
		return []Movie{}, false
	}
	return cache.Movies, true
}

func (s *service) persistMovies(ctx context.Context, deviceID string, movies []Movie) {
	if err := s.slots.Set(ctx, deviceID, slots.SlotMovies, movieCache{Movies: movies}); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "catalog.movies cache persist failed", err)
		}
	}
}
