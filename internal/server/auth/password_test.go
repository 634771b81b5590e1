package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal plaintext")
	}

	if !CheckPassword("secret1", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same input must differ")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("secret1", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must verify as false")
	}
}
