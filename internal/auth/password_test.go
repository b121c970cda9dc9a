package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("Hash must not equal the plain password")
	}

	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Errorf("Expected matching password, got %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Error("Expected mismatch error for wrong password")
	}
}
