package client

import "strings"

// Role is the coarse authorization tag gating which routes are
// reachable.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

const adminMarker = "ADMIN"

// ResolveRole derives the role from the token string alone, without a
// server round trip. The substring rule is kept for compatibility with
// the deployed backend; it is not a claims check. Callers recompute it
// on every authorization decision, the result is never cached.
func ResolveRole(token string) Role {
	if strings.Contains(token, adminMarker) {
		return RoleAdmin
	}
	return RoleEmployee
}

// DashboardRoute returns the role's own landing route.
func (r Role) DashboardRoute() string {
	if r == RoleAdmin {
		return RouteAdminDashboard
	}
	return RouteEmployeeDashboard
}
