package common

import (
	"fmt"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// NormalizeFlightCode uppercases and trims an IATA flight number for use as
// a cache or history key.
func NormalizeFlightCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeICAO24 lowercases a transponder hex the way the live-position
// provider expects it.
func NormalizeICAO24(hex string) string {
	return strings.ToLower(strings.TrimSpace(hex))
}
