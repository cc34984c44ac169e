package util

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
	if CheckPassword("s3cret", "not-a-hash") {
		t.Error("malformed hash accepted")
	}
}
