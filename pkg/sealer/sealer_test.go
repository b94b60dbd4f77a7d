package sealer

import (
	"bytes"
	"testing"
)

func testKey() []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestSealUnseal_RoundTrip(t *testing.T) {
	s, err := New(testKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plaintext := []byte(`{"access_token":"ya29.x","refresh_token":"1//y"}`)
	token, err := s.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	got, err := s.Unseal(token)
	if err != nil {
		t.Fatalf("Unseal failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("round trip mismatch: got %q", got)
	}
}

func TestNew_RejectsShortKey(t *testing.T) {
	if _, err := New([]byte("short")); err == nil {
		t.Error("expected error for short key")
	}
}

func TestUnseal_RejectsTamperedToken(t *testing.T) {
	s, _ := New(testKey())
	token, _ := s.Seal([]byte("payload"))

	tampered := "A" + token[1:]
	if _, err := s.Unseal(tampered); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestUnseal_RejectsGarbage(t *testing.T) {
	s, _ := New(testKey())
	if _, err := s.Unseal("not-base64!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}
