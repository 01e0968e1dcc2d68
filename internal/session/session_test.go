package session

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// unsigned test token with the given claims
func testToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	body := base64.RawURLEncoding.EncodeToString(payload)
	sig := base64.RawURLEncoding.EncodeToString([]byte("sig"))
	return header + "." + body + "." + sig
}

func TestLifecycle(t *testing.T) {
	s := New()
	if s.State() != Anonymous || s.LoggedIn() {
		t.Fatal("new session must be anonymous")
	}

	exp := time.Now().Add(time.Hour).Unix()
	s.Establish(testToken(t, map[string]any{"role": "ADMIN", "exp": exp}))

	if s.State() != Authenticated || !s.LoggedIn() {
		t.Fatal("session must be authenticated after Establish")
	}
	if s.Role() != "ADMIN" {
		t.Errorf("role = %q, want ADMIN", s.Role())
	}
	if s.Token() == "" {
		t.Error("token must be retained while authenticated")
	}

	s.Expire()
	if s.State() != Expired || s.LoggedIn() {
		t.Fatal("session must be expired after Expire")
	}
	if s.Token() != "" || s.Role() != "" {
		t.Error("credential must be dropped on expiry")
	}
}

func TestDefaultRoleWhenClaimMissing(t *testing.T) {
	s := New()
	s.Establish(testToken(t, map[string]any{"sub": "agency1"}))
	if s.Role() != DefaultRole {
		t.Errorf("role = %q, want %q", s.Role(), DefaultRole)
	}
}

func TestOpaqueTokenStillAuthenticates(t *testing.T) {
	s := New()
	s.Establish("not-a-jwt")
	if !s.LoggedIn() {
		t.Fatal("opaque token must still authenticate")
	}
	if s.Role() != DefaultRole {
		t.Errorf("role = %q, want %q", s.Role(), DefaultRole)
	}
}

func TestExpiredClaimBlocksLoggedIn(t *testing.T) {
	s := New()
	s.Establish(testToken(t, map[string]any{"exp": time.Now().Add(-time.Minute).Unix()}))
	if s.LoggedIn() {
		t.Fatal("token past its exp claim must not count as logged in")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Establish("token")
	s.Clear()
	if s.State() != Anonymous || s.Token() != "" {
		t.Fatal("Clear must return to anonymous with no credential")
	}
}
