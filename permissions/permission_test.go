package permissions_test

import (
	"net/http"
	"testing"

	"conectapro/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	perms, err := permissions.Parse([]byte(`{"endpoints":[
		{"method":"GET","path":"/v1/clients/home","permissions":["CLIENTE"]},
		{"method":"POST","path":"/v1/auth/login","skip":true}
	]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"CLIENTE"}, perms.FindPermissions("/v1/clients/home", http.MethodGet).Permissions)
	assert.True(t, perms.FindPermissions("/v1/auth/login", http.MethodPost).Skip)
	assert.Equal(t, permissions.Permission{}, perms.FindPermissions("/v1/clients/home", http.MethodPost))
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":[
		{"method":"GET","path":"/v1/clients/home","permissions":["CLIENTE"]},
		{"method":"GET","path":"/v1/clients/home","permissions":["CONECTA_PRO"]}
	]}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /v1/clients/home")
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":`))

	require.Error(t, err)
}

func TestFindWithoutIndex(t *testing.T) {
	perms := &permissions.PermissionData{Endpoints: []permissions.Permission{
		{Method: http.MethodGet, Path: "/v1/providers/reviews", Permissions: []string{"CONECTA_PRO"}},
	}}

	assert.Equal(t, []string{"CONECTA_PRO"}, perms.FindPermissions("/v1/providers/reviews", http.MethodGet).Permissions)
}

func TestEmbeddedPermissions(t *testing.T) {
	perms := permissions.Get()
	require.NotNil(t, perms)

	assert.False(t, perms.Skip)
	assert.True(t, perms.FindPermissions("/v1/auth/register", http.MethodPost).Skip)
	assert.Equal(t, []string{"CLIENTE"}, perms.FindPermissions("/v1/clients/service-request/{requestId}/review", http.MethodPost).Permissions)
	assert.Equal(t, []string{permissions.RoleInternal}, perms.FindPermissions("/v1/internal/service-requests/{requestId}/complete", http.MethodPost).Permissions)
}
