package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "testpassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "" {
		t.Error("HashPassword() returned empty hash")
	}
	if hash == password {
		t.Error("hash should not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash does not look like bcrypt: %q", hash)
	}
}

func TestHashPassword_DifferentHashes(t *testing.T) {
	hash1, _ := HashPassword("samepassword")
	hash2, _ := HashPassword("samepassword")

	if hash1 == hash2 {
		t.Error("bcrypt should salt: identical passwords must hash differently")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "correct-horse-battery-staple"
	hash, _ := HashPassword(password)

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword should accept the correct password")
	}
	if CheckPassword("wrong-password", hash) {
		t.Error("CheckPassword should reject a wrong password")
	}
	if CheckPassword(password, "not-a-hash") {
		t.Error("CheckPassword should reject a malformed hash")
	}
}

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP() error = %v", err)
		}
		if len(otp) != 6 {
			t.Errorf("GenerateOTP() = %q, expected 6 digits", otp)
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Errorf("GenerateOTP() = %q, contains non-digit", otp)
			}
		}
		seen[otp] = true
	}

	if len(seen) < 2 {
		t.Error("20 generated codes were all identical; generator looks broken")
	}
}
