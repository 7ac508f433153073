package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword trims and hashes a raw password. Trimming matches what the
// signup forms send; without it a trailing space at registration locks the
// account out forever.
func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(raw)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, raw string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(raw))) == nil
}
