package enums

// EntitlementState is the resolved right to stream premium content.
// Transitions happen only on explicit load/login/refresh calls.
type EntitlementState string

const (
	EntitlementStateUnknown         EntitlementState = "unknown"
	EntitlementStateUnauthenticated EntitlementState = "unauthenticated"
	EntitlementStateNoSubscription  EntitlementState = "no_subscription"
	EntitlementStateActive          EntitlementState = "active_subscription"
)

// String implements fmt.Stringer.
func (s EntitlementState) String() string {
	return string(s)
}
