package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Role
	}{
		{"marker alone", "ADMIN", RoleAdmin},
		{"marker embedded", "xyzADMINabc", RoleAdmin},
		{"marker at end", "Basic someencodedADMIN", RoleAdmin},
		{"empty token", "", RoleEmployee},
		{"plain token", "Basic YWxpY2U6c2VjcmV0", RoleEmployee},
		{"lowercase marker", "admin", RoleEmployee},
		{"partial marker", "ADMI", RoleEmployee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRole(tt.token))
		})
	}
}

func TestRole_DashboardRoute(t *testing.T) {
	assert.Equal(t, RouteAdminDashboard, RoleAdmin.DashboardRoute())
	assert.Equal(t, RouteEmployeeDashboard, RoleEmployee.DashboardRoute())
}
