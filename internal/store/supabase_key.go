package store

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Supabase key roles
const (
	RoleAnon        = "anon"
	RoleServiceRole = "service_role"
)

// KeyRole reports the role claim of a legacy Supabase JWT key. The
// signature is not checked; PostgREST does that. Opaque keys such as
// sb_publishable_... report "" and false.
func KeyRole(key string) (string, bool) {
	if strings.Count(key, ".") != 2 {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return "", false
	}

	role, ok := claims["role"].(string)
	return role, ok && role != ""
}
