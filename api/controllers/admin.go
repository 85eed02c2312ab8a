package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/afromanapp/afroman-backend/api/middleware"
	"github.com/afromanapp/afroman-backend/api/responses"
	"github.com/afromanapp/afroman-backend/api/validators"
	"github.com/afromanapp/afroman-backend/internal/catalog"
	pkgAuth "github.com/afromanapp/afroman-backend/pkg/auth"
	"github.com/afromanapp/afroman-backend/pkg/config"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
	"github.com/afromanapp/afroman-backend/pkg/security"
)

type adminSessionManager interface {
	Create(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
}

type adminLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin checks the configured back-office credentials and mints a JWT
// with a matching server-side session.
func AdminLogin(cfg *config.Config, sessions adminSessionManager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cfg == nil || sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin auth unavailable"))
			return
		}

		var payload adminLoginPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if !strings.EqualFold(strings.TrimSpace(payload.Email), cfg.Admin.Email) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials"))
			return
		}

		ok, err := security.VerifyPassword(payload.Password, cfg.Admin.PasswordHash)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password"))
			return
		}
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials"))
			return
		}

		jti := uuid.NewString()
		token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
			Email: cfg.Admin.Email,
			JTI:   jti,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token"))
			return
		}

		if err := sessions.Create(ctx, jti); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"access_token": token,
			"expires_in":   int(cfg.JWT.Expiration().Seconds()),
		})
	}
}

// AdminLogout revokes the current token's server-side session.
func AdminLogout(sessions adminSessionManager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin auth unavailable"))
			return
		}

		accessID := middleware.AdminAccessIDFromContext(ctx)
		if accessID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
			return
		}

		if err := sessions.Revoke(ctx, accessID); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session"))
			return
		}
		responses.WriteSuccess(w, map[string]bool{"logged_out": true})
	}
}

// AdminMovieCreate adds a movie to the device cache and mirrors it remotely.
func AdminMovieCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload catalog.AddMovieInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		movie, status, err := svc.AddMovie(ctx, deviceID, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"movie":  movie,
			"mirror": status,
		})
	}
}

// AdminMovieDelete removes a movie locally and best-effort remotely.
func AdminMovieDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		movieID := strings.TrimSpace(chi.URLParam(r, "movieId"))
		deviceID := middleware.DeviceIDFromContext(ctx)
		status, err := svc.DeleteMovie(ctx, deviceID, movieID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"mirror": status})
	}
}
