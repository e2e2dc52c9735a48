package utils

import (
	"strings"
	"testing"
)

func TestAnonymousTokenDeterministic(t *testing.T) {
	a := AnonymousToken("MZ1001", "pepper")
	b := AnonymousToken("MZ1001", "pepper")
	if a != b {
		t.Fatalf("same input must yield the same token: %q vs %q", a, b)
	}
}

func TestAnonymousTokenFormat(t *testing.T) {
	token := AnonymousToken("MZ1001", "pepper")
	if !strings.HasPrefix(token, "ANON_") {
		t.Fatalf("expected ANON_ prefix, got %q", token)
	}
	suffix := strings.TrimPrefix(token, "ANON_")
	if len(suffix) != 12 {
		t.Fatalf("expected 12 hex chars, got %d (%q)", len(suffix), suffix)
	}
	for _, c := range suffix {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("non-hex character %q in token %q", c, token)
		}
	}
}

func TestAnonymousTokenVariesByInput(t *testing.T) {
	base := AnonymousToken("MZ1001", "pepper")
	if AnonymousToken("MZ1002", "pepper") == base {
		t.Fatal("different donors must yield different tokens")
	}
	if AnonymousToken("MZ1001", "other") == base {
		t.Fatal("different salts must yield different tokens")
	}
}
