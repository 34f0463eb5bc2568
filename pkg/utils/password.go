package utils

import (
	"strings"
	"unicode"

	"github.com/EsmaelAwad/fastapi-social-media-app/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

const specialCharacters = "*&!#$%"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the registration password rules: longer
// than 8 characters, at least one uppercase letter and at least one
// special character from *&!#$%.
func ValidatePassword(password string) error {
	if len(password) <= 8 {
		return &apperr.ValidationError{Msg: "Password must be greater than 8 characters."}
	}
	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return &apperr.ValidationError{Msg: "Password must have at least 1 uppercase character."}
	}
	if !strings.ContainsAny(password, specialCharacters) {
		return &apperr.ValidationError{Msg: "Password must have at least 1 special character like (*&!#$%)."}
	}
	return nil
}

// Capitalize normalizes a location name to "Xxxx" form.
func Capitalize(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return value
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
