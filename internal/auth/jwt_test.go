package auth

import (
	"testing"
	"time"
)

func TestBuildAndParseJWT(t *testing.T) {
	secret := []byte("test-secret-min-32-chars-aaaaaaaaa")
	tok, err := BuildJWT(secret, 42, RoleProfessional, time.Hour)
	if err != nil {
		t.Fatalf("BuildJWT: %v", err)
	}
	claims, err := ParseJWT(secret, tok)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 || claims.Role != RoleProfessional {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseJWTExpired(t *testing.T) {
	secret := []byte("test-secret-min-32-chars-aaaaaaaaa")
	tok, err := BuildJWT(secret, 1, RolePatient, -time.Minute)
	if err != nil {
		t.Fatalf("BuildJWT: %v", err)
	}
	if _, err := ParseJWT(secret, tok); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	secret := []byte("test-secret-min-32-chars-aaaaaaaaa")
	tok, err := BuildJWT(secret, 1, RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("BuildJWT: %v", err)
	}
	if _, err := ParseJWT([]byte("another-secret-32-chars-bbbbbbbbbb"), tok); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleAdmin, RoleProfessional, RolePatient} {
		if !ValidRole(r) {
			t.Fatalf("role %s should be valid", r)
		}
	}
	if ValidRole("GUEST") || ValidRole("") {
		t.Fatal("unexpected role accepted")
	}
}
