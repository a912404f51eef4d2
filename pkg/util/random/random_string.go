package random

import (
	"crypto/rand"
	"math/big"
	"time"
)

// GetNowAndLenRandomString generates a timestamp-prefixed random string,
// used as the tail of business uuids.
// Format: YYMMDD + mixed alphanumerics
// Example: 260828AbCdE1234567
func GetNowAndLenRandomString(length int) string {
	result := make([]byte, length)
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	charsetLen := big.NewInt(int64(len(charset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			result[i] = 'x'
			continue
		}
		result[i] = charset[n.Int64()]
	}
	return time.Now().Format("060102") + string(result)
}

// NewUserID generates a user uuid ("U" prefix).
func NewUserID() string {
	return "U" + GetNowAndLenRandomString(13)
}

// NewPetID generates a pet uuid ("P" prefix).
func NewPetID() string {
	return "P" + GetNowAndLenRandomString(13)
}

// NewAdoptionRequestID generates an adoption request uuid ("A" prefix).
func NewAdoptionRequestID() string {
	return "A" + GetNowAndLenRandomString(13)
}
