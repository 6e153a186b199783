package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GenerateID generates a unique ID with the given prefix
func GenerateID(prefix string) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 10

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		result[i] = charset[num.Int64()]
	}

	return fmt.Sprintf("%s-%s", prefix, string(result))
}

// ValidateMemberID validates the member ID format
func ValidateMemberID(memberID string) bool {
	return strings.HasPrefix(memberID, "mbr-")
}

// ValidateIdentification checks that an identification is 10 to 13 digits.
// Length 10 corresponds to an individual ID, length 13 to an organization
// registration number; anything in between is accepted here and resolved
// against the declared type upstream.
func ValidateIdentification(identification string) bool {
	if len(identification) < 10 || len(identification) > 13 {
		return false
	}
	for _, r := range identification {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
