package crypto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// InviteCodeLength is the length of generated invite codes
	InviteCodeLength = 8
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateInviteCode generates a candidate invite code. Codes are the first
// 8 hex characters of a random UUID; callers must collision-check against
// the user store before assigning one.
func GenerateInviteCode() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return hex[:InviteCodeLength]
}
