package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "secret123") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "secret124") {
		t.Fatal("wrong password accepted")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "secret123") {
		t.Fatal("malformed hash must not verify")
	}
	if CheckPassword("", "secret123") {
		t.Fatal("empty hash must not verify")
	}
}
