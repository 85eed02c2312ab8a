package controllers

import (
	"net/http"
	"time"

	"github.com/afromanapp/afroman-backend/api/middleware"
	"github.com/afromanapp/afroman-backend/api/responses"
	"github.com/afromanapp/afroman-backend/api/validators"
	"github.com/afromanapp/afroman-backend/internal/entitlement"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

type loginPayload struct {
	ID                    string     `json:"id" validate:"required"`
	Email                 string     `json:"email" validate:"required,email"`
	IsAdmin               bool       `json:"is_admin"`
	HasSubscription       bool       `json:"has_subscription"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at"`
}

// SessionFetch loads the cached identity merged with freshly recomputed
// entitlement.
func SessionFetch(svc entitlement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "entitlement service unavailable"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		session, err := svc.LoadUser(ctx, deviceID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// SessionLogin caches the identity after re-validating its entitlement. The
// has_subscription flag in the payload is deliberately ignored in favor of a
// fresh check.
func SessionLogin(svc entitlement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "entitlement service unavailable"))
			return
		}

		var payload loginPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		session, err := svc.Login(ctx, deviceID, entitlement.User{
			ID:                    payload.ID,
			Email:                 payload.Email,
			IsAdmin:               payload.IsAdmin,
			HasSubscription:       payload.HasSubscription,
			SubscriptionExpiresAt: payload.SubscriptionExpiresAt,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// SessionRefresh re-checks entitlement on user demand.
func SessionRefresh(svc entitlement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "entitlement service unavailable"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		session, err := svc.Refresh(ctx, deviceID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// SessionLogout clears the cached identity. Cart and watchlist survive.
func SessionLogout(svc entitlement.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "entitlement service unavailable"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		if err := svc.Logout(ctx, deviceID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"logged_out": true})
	}
}
