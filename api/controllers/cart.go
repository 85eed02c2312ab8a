package controllers

import (
	"net/http"

	"github.com/afromanapp/afroman-backend/api/middleware"
	"github.com/afromanapp/afroman-backend/api/responses"
	"github.com/afromanapp/afroman-backend/api/validators"
	"github.com/afromanapp/afroman-backend/internal/cart"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

type cartItemPayload struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
}

// CartFetch returns the device's cart with totals.
func CartFetch(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		view, err := svc.Get(ctx, deviceID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartAddItem merges a product/size pair into the cart.
func CartAddItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		view, err := svc.Add(ctx, deviceID, payload.ProductID, payload.Size)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartRemoveItem removes the entry matching the product/size pair exactly.
func CartRemoveItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		view, err := svc.Remove(ctx, deviceID, payload.ProductID, payload.Size)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartClear empties the device's cart.
func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		deviceID := middleware.DeviceIDFromContext(ctx)
		if err := svc.Clear(ctx, deviceID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"cleared": true})
	}
}
