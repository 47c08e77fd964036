package auth

import (
	"strings"
	"testing"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	// Minimum cost keeps the test fast; production uses 12.
	h := BcryptHasher{Cost: 4}

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}

	if !h.Verify("correct horse battery staple", hash) {
		t.Fatal("Verify rejected the correct password")
	}
	if h.Verify("wrong password", hash) {
		t.Fatal("Verify accepted a wrong password")
	}
}

func TestBcryptHasher_OverlongPassword(t *testing.T) {
	t.Parallel()

	// bcrypt rejects inputs over 72 bytes; validation caps passwords first,
	// so the hasher only needs to fail cleanly.
	h := BcryptHasher{Cost: 4}
	if _, err := h.Hash(strings.Repeat("a", 100)); err == nil {
		t.Fatal("expected error for >72 byte password")
	}
}

func TestBcryptHasher_VerifyGarbageHash(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{}
	if h.Verify("whatever", "not-a-bcrypt-hash") {
		t.Fatal("Verify accepted a malformed hash")
	}
}
