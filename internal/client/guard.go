package client

// Route surface of the portal. Each protected route declares the role
// it expects.
const (
	RouteLogin             = "/login"
	RouteAdminDashboard    = "/admin/dashboard"
	RouteEmployeeDashboard = "/employee/dashboard"
	RouteAdminItems        = "/admin/items"
	RouteAdminRequests     = "/admin/requests"
)

// Route pairs a path with the role allowed to enter it.
type Route struct {
	Path         string
	ExpectedRole Role
}

// ProtectedRoutes lists every route behind the guard.
var ProtectedRoutes = []Route{
	{Path: RouteAdminDashboard, ExpectedRole: RoleAdmin},
	{Path: RouteEmployeeDashboard, ExpectedRole: RoleEmployee},
	{Path: RouteAdminItems, ExpectedRole: RoleAdmin},
	{Path: RouteAdminRequests, ExpectedRole: RoleAdmin},
}

// Decision is the guard's verdict on a route entry. When entry is
// denied, RedirectTo names where to send the user instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard gates route entry on the session and the derived role. It is
// stateless and reentrant, never errors and never touches the session.
type Guard struct {
	session *CredentialStore
}

// NewGuard creates a Guard reading from the given credential store.
func NewGuard(session *CredentialStore) *Guard {
	return &Guard{session: session}
}

// Authorize decides entry to a protected route: unauthenticated callers
// go to the login route, a role mismatch redirects to that role's own
// dashboard, everything else is allowed through.
func (g *Guard) Authorize(route Route) Decision {
	if !g.session.IsAuthenticated() {
		return Decision{Allowed: false, RedirectTo: RouteLogin}
	}

	role := ResolveRole(g.session.Token())
	if role != route.ExpectedRole {
		return Decision{Allowed: false, RedirectTo: role.DashboardRoute()}
	}

	return Decision{Allowed: true}
}
