package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret")

	expireAt := time.Now().Add(time.Hour)
	token, err := GenerateToken(1, "admin", "admin", expireAt, "hostpanel")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if token == "" {
		t.Fatal("Expected non-empty token")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}
	if claims.UID != 1 {
		t.Errorf("Expected uid 1, got %d", claims.UID)
	}
	if claims.Username != "admin" {
		t.Errorf("Expected username admin, got %q", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("Expected role admin, got %q", claims.Role)
	}
	if claims.Issuer != "hostpanel" {
		t.Errorf("Expected issuer hostpanel, got %q", claims.Issuer)
	}
}

func TestParseToken_Expired(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken(1, "admin", "admin", time.Now().Add(-time.Hour), "hostpanel")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	_, err = ParseToken(token)
	if err == nil {
		t.Fatal("Expected error for expired token")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("Expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	InitJWT("test-secret")
	token, err := GenerateToken(1, "admin", "admin", time.Now().Add(time.Hour), "hostpanel")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	InitJWT("other-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	InitJWT("test-secret")
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}
