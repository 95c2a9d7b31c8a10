package config

import (
	"strings"
	"time"
)

// CORSConfig mirrors the fiber cors middleware options we expose.
type CORSConfig struct {
	Enabled          bool
	AllowOrigin      []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	ExposeHeaders    []string
	MaxAge           int // seconds, 0 omits the header
}

type RateLimitConfig struct {
	Enabled bool
	Max     int
	Window  time.Duration
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
