// Package permissions maps every routed endpoint to the account types allowed to call it.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// RoleInternal is granted to no account; endpoints carrying it are reachable only with the API key.
const RoleInternal = "INTERNAL"

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func key(path, method string) string {
	return method + " " + path
}

// FindPermissions returns the entry for a route pattern. Unknown routes get the zero
// Permission, which RBAC lets through once Auth has verified the caller.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index != nil {
		return r.index[key(path, method)]
	}

	for _, rp := range r.Endpoints {
		if rp.Path == path && rp.Method == method {
			return rp
		}
	}

	return Permission{}
}

// Parse decodes a permission document and indexes it by method and path.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	permissions.index = make(map[string]Permission, len(permissions.Endpoints))

	for _, rp := range permissions.Endpoints {
		k := key(rp.Path, rp.Method)
		if _, ok := permissions.index[k]; ok {
			return nil, fmt.Errorf("duplicate permission for %s", k)
		}

		permissions.index[k] = rp
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
