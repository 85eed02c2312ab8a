package middleware

import "context"

type contextKey string

const (
	ctxDeviceID      contextKey = "device_id"
	ctxAdminEmail    contextKey = "admin_email"
	ctxAdminAccessID contextKey = "admin_access_id"
)

// WithDeviceID seeds the device id the way the Device middleware does, for
// handlers exercised outside the full middleware chain.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, ctxDeviceID, deviceID)
}

// DeviceIDFromContext returns the device id seeded by the Device middleware.
func DeviceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxDeviceID).(string); ok {
		return v
	}
	return ""
}

// WithAdminAccessID seeds the admin session id the way AdminAuth does, for
// handlers exercised outside the full middleware chain.
func WithAdminAccessID(ctx context.Context, accessID string) context.Context {
	return context.WithValue(ctx, ctxAdminAccessID, accessID)
}

// AdminEmailFromContext returns the authenticated admin email, if any.
func AdminEmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxAdminEmail).(string); ok {
		return v
	}
	return ""
}

// AdminAccessIDFromContext returns the session id of the admin token, if any.
func AdminAccessIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxAdminAccessID).(string); ok {
		return v
	}
	return ""
}
