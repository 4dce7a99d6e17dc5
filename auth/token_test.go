package auth

import (
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	token, err := Sign("64a000000000000000000001", "secret", time.Now())
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	userID, err := Verify(token, "secret")
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if userID != "64a000000000000000000001" {
		t.Fatalf("got userID %q", userID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Sign("u1", "secret", time.Now())
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := Verify(token, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	// Issued long enough ago that the 7-day TTL has passed.
	token, err := Sign("u1", "secret", time.Now().Add(-TokenTTL-time.Hour))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := Verify(token, "secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerifyGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := Verify(tok, "secret"); err == nil {
			t.Fatalf("expected error for token %q", tok)
		}
	}
}
