package controllers

import (
	"net/http"

	"github.com/afromanapp/afroman-backend/api/middleware"
	"github.com/afromanapp/afroman-backend/api/responses"
	"github.com/afromanapp/afroman-backend/internal/catalog"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

// MovieSync resolves the premium catalog for the device and reports which
// tier (remote, cache or seed) satisfied the load.
func MovieSync(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		result, err := svc.SyncMovies(ctx, deviceID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// MusicVideoList returns the free promotional videos.
func MusicVideoList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		videos, err := svc.MusicVideos(ctx, deviceID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"videos": videos})
	}
}
