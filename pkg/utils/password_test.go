package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Password1!", ""},
		{"too short", "Sh!rt", "Password must be greater than 8 characters."},
		{"exactly eight", "Abcdef!g", "Password must be greater than 8 characters."},
		{"no uppercase", "lowercase!only", "Password must have at least 1 uppercase character."},
		{"no special", "NoSpecialChars1", "Password must have at least 1 special character like (*&!#$%)."},
		{"hash special", "Secure#Enough", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("got %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password1!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Password1!" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPasswordHash("Password1!", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("Password2!", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"cairo":  "Cairo",
		"EGYPT":  "Egypt",
		" oslo ": "Oslo",
		"":       "",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
