package helpers

import "time"

// ParseDuration parses a duration string, returning fallback when the
// value is empty or malformed.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
