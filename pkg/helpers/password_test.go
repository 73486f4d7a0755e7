package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password" {
		t.Fatal("hash equals plaintext")
	}
	if !CompareHashAndPassword(hash, "password") {
		t.Error("correct password rejected")
	}
	if CompareHashAndPassword(hash, "Password") {
		t.Error("wrong password accepted")
	}
	if CompareHashAndPassword("", "password") {
		t.Error("empty hash accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashPassword("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password must differ")
	}
}
