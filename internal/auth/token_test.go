package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret", time.Hour)

	tok, err := m.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	sub, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if sub != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", sub, "user-123")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", -time.Second)

	tok, err := m.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_ExpiryWindow(t *testing.T) {
	t.Parallel()

	// A 7-day token is still accepted 6 days after issuance and rejected 8
	// days after. The issuing clock is shifted back instead of sleeping; the
	// verifier runs on real time. Claims carry second precision, so
	// sub-second TTLs cannot exercise this window.
	verifier := NewTokenManager("secret", 7*24*time.Hour)
	issuer := NewTokenManager("secret", 7*24*time.Hour)

	issuer.now = func() time.Time { return time.Now().Add(-6 * 24 * time.Hour) }
	tok, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := verifier.Verify(tok); err != nil {
		t.Fatalf("token rejected a day before expiry: %v", err)
	}

	issuer.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	tok, err = issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := verifier.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken a day past expiry, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenManager("wrong-secret", time.Hour).Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("k", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}
