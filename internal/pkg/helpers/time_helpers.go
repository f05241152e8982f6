package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const day = 24 * time.Hour

// ParseDurationStrict parses Go durations plus a whole-day form such as "30d".
func ParseDurationStrict(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Duration(n) * day, nil
	}
	return time.ParseDuration(s)
}

// ParseDuration is ParseDurationStrict with a fallback. Empty input returns def silently.
func ParseDuration(s string, def time.Duration) time.Duration {
	if strings.TrimSpace(s) == "" {
		return def
	}
	d, err := ParseDurationStrict(s)
	if err != nil {
		log.Warn().Err(err).Str("value", s).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}
