package middleware

import (
	"net/http"
	"strings"

	"github.com/afromanapp/afroman-backend/api/responses"
	pkgerrors "github.com/afromanapp/afroman-backend/pkg/errors"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

const deviceIDHeader = "X-Device-Id"

// Device requires the device id header that scopes every per-device slot and
// seeds it into the request context.
func Device(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deviceID := strings.TrimSpace(r.Header.Get(deviceIDHeader))
			if deviceID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "X-Device-Id header is required"))
				return
			}

			ctx := WithDeviceID(r.Context(), deviceID)
			if logg != nil {
				ctx = logg.WithDeviceID(ctx, deviceID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
