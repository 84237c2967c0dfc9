package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret123" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !CheckPasswordHash("secret123", hash) {
		t.Error("CheckPasswordHash() rejected the correct password")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("CheckPasswordHash() accepted a wrong password")
	}
}
