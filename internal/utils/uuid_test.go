package utils

import "testing"

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	if first == "" || second == "" {
		t.Fatal("expected non-empty ids")
	}
	if first == second {
		t.Error("expected unique ids")
	}
	if !IsValidID(first) {
		t.Errorf("expected well-formed uuid, got %s", first)
	}
}

func TestIsValidID(t *testing.T) {
	if IsValidID("123abc") {
		t.Error("expected malformed id to be rejected")
	}
	if !IsValidID("0198a6a0-0000-7000-8000-000000000001") {
		t.Error("expected well-formed uuid to be accepted")
	}
}
