package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	password := "medicine1!"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !strings.Contains(hash, "$") {
		t.Errorf("hash %q missing salt separator", hash)
	}

	match, err := VerifyPassword(hash, password)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !match {
		t.Error("correct password did not verify")
	}

	match, err = VerifyPassword(hash, "wrong-pass1!")
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if match {
		t.Error("wrong password verified")
	}
}

func TestHashPasswordRejectsWeakPasswords(t *testing.T) {
	weak := []string{"short", "nodigits!", "nospecial1", ""}

	for _, password := range weak {
		if _, err := HashPassword(password); err == nil {
			t.Errorf("HashPassword(%q) expected error", password)
		}
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	password := "medicine1!"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password share a salt")
	}
}

func TestComparePasswords(t *testing.T) {
	hash, err := HashPassword("medicine1!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !ComparePasswords(hash, "medicine1!") {
		t.Error("ComparePasswords() = false for the correct password")
	}
	if ComparePasswords(hash, "other-pass1!") {
		t.Error("ComparePasswords() = true for a wrong password")
	}
	if ComparePasswords("not-a-valid-hash", "medicine1!") {
		t.Error("ComparePasswords() = true for a malformed stored hash")
	}
}
