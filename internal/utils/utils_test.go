package utils

import (
	"testing"

	"github.com/TargetKart/targetkart-backend/internal/config"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: secret, ExpiresIn: 3600},
	}
}

// TestJWTRoundTrip ensures an issued token validates and carries its claims.
func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig("test-secret")

	token, err := GenerateJWT("user1", "demo@targetkart.in", "admin", cfg)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ValidateJWT(token, cfg)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims["sub"] != "user1" || claims["email"] != "demo@targetkart.in" || claims["role"] != "admin" {
		t.Fatalf("claims = %v", claims)
	}
}

// TestValidateJWTWrongSecret ensures a token signed with another secret is
// rejected.
func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user1", "demo@targetkart.in", "admin", testConfig("secret-a"))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ValidateJWT(token, testConfig("secret-b")); err == nil {
		t.Fatal("token validated against the wrong secret")
	}
}

// TestGenerateRandomString ensures generated strings have the requested
// length and do not repeat.
func TestGenerateRandomString(t *testing.T) {
	first, err := GenerateRandomString(32)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(first) != 32 {
		t.Fatalf("got length %d, want 32", len(first))
	}

	second, err := GenerateRandomString(32)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if first == second {
		t.Fatal("consecutive strings collide")
	}
}
