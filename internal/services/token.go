package services

import (
	"errors"
	"time"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"
	"github.com/EsmaelAwad/fastapi-social-media-app/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the signed bearer tokens that
// establish caller identity. It is stateless: nothing is persisted, a
// token is valid purely as a function of its signature and expiry.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	method := jwt.GetSigningMethod(cfg.JWT.Algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &TokenService{
		secret: []byte(cfg.JWT.Secret),
		method: method,
		ttl:    time.Duration(cfg.JWT.ExpireMinutes) * time.Minute,
	}
}

// Issue embeds the given claims plus an expiry of now + configured TTL
// into a signed token.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = jwt.NewNumericDate(time.Now().Add(s.ttl))

	return jwt.NewWithClaims(s.method, mapClaims).SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the embedded
// claims. Only the configured signing algorithm is accepted.
func (s *TokenService) Validate(tokenString string) (map[string]any, error) {
	if tokenString == "" {
		return nil, apperr.ErrMissingCredential
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrTokenExpired
		}
		return nil, apperr.ErrTokenInvalid
	}

	return claims, nil
}
