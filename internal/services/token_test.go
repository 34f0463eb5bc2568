package services

import (
	"errors"
	"testing"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/config"
)

func tokenConfig(secret, alg string, minutes int) *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: secret, Algorithm: alg, ExpireMinutes: minutes},
	}
}

func TestIssueValidateRoundtrip(t *testing.T) {
	svc := NewTokenService(tokenConfig("test-secret", "HS256", 30))

	token, err := svc.Issue(map[string]any{"user_email": "alice@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got, _ := claims["user_email"].(string); got != "alice@example.com" {
		t.Fatalf("unexpected user_email claim: %q", got)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatal("expected exp claim")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewTokenService(tokenConfig("test-secret", "HS256", -1))

	token, err := svc.Issue(map[string]any{"user_email": "alice@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, apperr.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewTokenService(tokenConfig("secret-a", "HS256", 30))
	verifier := NewTokenService(tokenConfig("secret-b", "HS256", 30))

	token, err := issuer.Issue(map[string]any{"user_email": "alice@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Validate(token)
	if !errors.Is(err, apperr.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateWrongAlgorithm(t *testing.T) {
	issuer := NewTokenService(tokenConfig("test-secret", "HS256", 30))
	verifier := NewTokenService(tokenConfig("test-secret", "HS512", 30))

	token, err := issuer.Issue(map[string]any{"user_email": "alice@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Validate(token)
	if !errors.Is(err, apperr.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateMissingToken(t *testing.T) {
	svc := NewTokenService(tokenConfig("test-secret", "HS256", 30))

	_, err := svc.Validate("")
	if !errors.Is(err, apperr.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	svc := NewTokenService(tokenConfig("test-secret", "HS256", 30))

	_, err := svc.Validate("not.a.token")
	if !errors.Is(err, apperr.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
