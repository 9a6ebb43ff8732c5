package entity

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateConfirmationCode builds the human-facing booking code:
// first three letters of the service type, creation time in base36, and four
// random base36 characters, all uppercase. Uniqueness is enforced by the
// storage index; callers re-roll on collision.
func GenerateConfirmationCode(serviceType string, now time.Time) string {
	prefix := strings.ToUpper(serviceType)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	random := make([]byte, 4)
	for i := range random {
		random[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}

	return prefix + "-" + timestamp + "-" + string(random)
}
