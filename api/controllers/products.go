package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/afromanapp/afroman-backend/api/responses"
	"github.com/afromanapp/afroman-backend/internal/products"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

// ProductList returns the full merch catalog.
func ProductList(catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if catalog == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"products": catalog.List()})
	}
}

// ProductDetail returns one product by id.
func ProductDetail(catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if catalog == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product catalog unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "productId"))
		product, ok := catalog.FindByID(id)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductCheckout returns the hosted checkout link for a product. Purchase
// completion happens entirely on the external page; nothing flows back here.
func ProductCheckout(catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if catalog == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product catalog unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "productId"))
		product, ok := catalog.FindByID(id)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		if product.CheckoutURL == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product has no checkout link"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"checkout_url": product.CheckoutURL})
	}
}
