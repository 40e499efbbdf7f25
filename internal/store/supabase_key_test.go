package store

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedKey(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return key
}

func TestKeyRole(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantRole string
		wantOK   bool
	}{
		{
			name:     "anon key",
			key:      signedKey(t, jwt.MapClaims{"iss": "supabase", "role": "anon"}),
			wantRole: RoleAnon,
			wantOK:   true,
		},
		{
			name:     "service role key",
			key:      signedKey(t, jwt.MapClaims{"iss": "supabase", "role": "service_role"}),
			wantRole: RoleServiceRole,
			wantOK:   true,
		},
		{
			name:   "jwt without role",
			key:    signedKey(t, jwt.MapClaims{"iss": "supabase"}),
			wantOK: false,
		},
		{name: "opaque key", key: "sb_publishable_abc123", wantOK: false},
		{name: "three garbage segments", key: "a.b.c", wantOK: false},
		{name: "empty", key: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := KeyRole(tt.key)
			if ok != tt.wantOK || role != tt.wantRole {
				t.Errorf("KeyRole() = (%q, %v), want (%q, %v)", role, ok, tt.wantRole, tt.wantOK)
			}
		})
	}
}
