package processor

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const referralCodeBytes = 6

// GenerateReferralCode returns a random 12 character upper-case hex code
func GenerateReferralCode() (string, error) {
	b := make([]byte, referralCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
