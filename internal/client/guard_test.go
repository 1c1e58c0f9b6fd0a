package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sessionWithToken(token, username string) *CredentialStore {
	storage := NewMemoryStorage()
	if token != "" {
		storage.Set(tokenKey, token)
		storage.Set(usernameKey, username)
	}
	return NewCredentialStore("http://unused", nil, storage)
}

func TestGuard_Unauthenticated_RedirectsToLogin(t *testing.T) {
	guard := NewGuard(sessionWithToken("", ""))

	for _, route := range ProtectedRoutes {
		decision := guard.Authorize(route)
		assert.False(t, decision.Allowed, "route %s", route.Path)
		assert.Equal(t, RouteLogin, decision.RedirectTo, "route %s", route.Path)
	}
}

func TestGuard_EmployeeOnAdminRoutes_RedirectsToEmployeeDashboard(t *testing.T) {
	guard := NewGuard(sessionWithToken("Basic c29tZXRoaW5n", "alice"))

	for _, route := range ProtectedRoutes {
		if route.ExpectedRole != RoleAdmin {
			continue
		}
		decision := guard.Authorize(route)
		assert.False(t, decision.Allowed, "route %s", route.Path)
		assert.Equal(t, RouteEmployeeDashboard, decision.RedirectTo, "route %s", route.Path)
	}
}

func TestGuard_AdminOnEmployeeRoute_RedirectsToAdminDashboard(t *testing.T) {
	guard := NewGuard(sessionWithToken("tokenWithADMINmarker", "boss"))

	decision := guard.Authorize(Route{Path: RouteEmployeeDashboard, ExpectedRole: RoleEmployee})
	assert.False(t, decision.Allowed)
	assert.Equal(t, RouteAdminDashboard, decision.RedirectTo)
}

func TestGuard_MatchingRole_Allows(t *testing.T) {
	adminGuard := NewGuard(sessionWithToken("tokenWithADMINmarker", "boss"))
	employeeGuard := NewGuard(sessionWithToken("Basic c29tZXRoaW5n", "alice"))

	for _, route := range ProtectedRoutes {
		guard := employeeGuard
		if route.ExpectedRole == RoleAdmin {
			guard = adminGuard
		}
		decision := guard.Authorize(route)
		assert.True(t, decision.Allowed, "route %s", route.Path)
		assert.Empty(t, decision.RedirectTo, "route %s", route.Path)
	}
}

func TestGuard_DoesNotMutateSession(t *testing.T) {
	session := sessionWithToken("Basic c29tZXRoaW5n", "alice")
	guard := NewGuard(session)

	guard.Authorize(Route{Path: RouteAdminItems, ExpectedRole: RoleAdmin})
	guard.Authorize(Route{Path: RouteEmployeeDashboard, ExpectedRole: RoleEmployee})

	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "Basic c29tZXRoaW5n", session.Token())
	assert.Equal(t, "alice", session.Username())
}
