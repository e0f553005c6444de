// Package permissions lists the admin API routes that can be called without a session.
package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission marks a route pattern that may be called without a session.
type Permission struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	// Skip opens every endpoint. Only meant for local development.
	Skip bool `json:"skip"`

	public map[string]bool
}

func routeKey(path, method string) string {
	return strings.ToUpper(method) + " " + path
}

// Public reports whether the chi route pattern can be called without a session.
func (r *PermissionData) Public(path, method string) bool {
	return r.Skip || r.public[routeKey(path, method)]
}

func Get() *PermissionData {
	return Parse(permissionsData)
}

// Parse decodes a skip list. It returns nil when data is not valid JSON.
func Parse(data []byte) *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.public = make(map[string]bool, len(permissions.Endpoints))
	for _, endpoint := range permissions.Endpoints {
		if endpoint.Skip {
			permissions.public[routeKey(endpoint.Path, endpoint.Method)] = true
		}
	}

	if permissions.Skip {
		log.Warn().Msg("Permission skip is on, every endpoint is public")
	}

	log.Info().Int("public", len(permissions.public)).Msg("Loaded embedded permissions")

	return &permissions
}
