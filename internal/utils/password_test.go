package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCheckPasswordPlain(t *testing.T) {
	if !CheckPassword("admin123", "admin123") {
		t.Error("matching plain password rejected")
	}
	for _, bad := range []string{"", "admin12", "admin1234", "ADMIN123"} {
		if CheckPassword("admin123", bad) {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestCheckPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !IsBcryptHash(hash) {
		t.Fatalf("%q not recognised as bcrypt", hash)
	}
	if !CheckPassword(hash, "correct horse") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
	// the hash itself is not a valid password
	if CheckPassword(hash, hash) {
		t.Error("hash accepted as password")
	}
}

func TestIsBcryptHash(t *testing.T) {
	tests := map[string]bool{
		"$2a$10$abc": true,
		"$2b$12$abc": true,
		"$2y$10$abc": true,
		"$2x$10$abc": false,
		"admin123":   false,
		"":           false,
	}
	for in, want := range tests {
		if got := IsBcryptHash(in); got != want {
			t.Errorf("IsBcryptHash(%q) = %v, want %v", in, got, want)
		}
	}
}
