package controllers

import (
	"net/http"

	"github.com/afromanapp/afroman-backend/api/middleware"
	"github.com/afromanapp/afroman-backend/api/responses"
	"github.com/afromanapp/afroman-backend/api/validators"
	"github.com/afromanapp/afroman-backend/internal/watchlist"
	"github.com/afromanapp/afroman-backend/pkg/enums"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

type toggleWatchlistPayload struct {
	ContentID   string `json:"content_id" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
}

// WatchlistList returns the device's saved content.
func WatchlistList(svc watchlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "watchlist service unavailable"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		items, err := svc.List(ctx, deviceID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}

// WatchlistToggle adds the content if absent, removes it if present. The
// "added" flag drives the client's confirmation copy.
func WatchlistToggle(svc watchlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "watchlist service unavailable"))
			return
		}

		var payload toggleWatchlistPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		contentType, err := enums.ParseContentType(payload.ContentType)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid content type"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		added, err := svc.Toggle(ctx, deviceID, payload.ContentID, contentType)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"added": added})
	}
}
