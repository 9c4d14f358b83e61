package logger

import (
	"os"
	"strings"

	"github.com/adamluzsi/fixreg"
)

type Level string

func (ll Level) String() string { return string(ll) }

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

const ErrUnknownLevel fixreg.Error = "ErrUnknownLevel"

// levels are in increasing order of severity.
var levels = []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

// ParseLevel accepts a level name, its first letter, or "critical" as an alias of fatal.
// Parsing is case-insensitive.
func ParseLevel(raw string) (Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "critical" || raw == "c" {
		return LevelFatal, nil
	}
	for _, l := range levels {
		if raw == string(l) || raw == string(l)[:1] {
			return l, nil
		}
	}
	return "", ErrUnknownLevel.F("%q", raw)
}

// Enabled reports whether an entry at the given level passes this minimum level.
// An empty Level behaves as LevelInfo.
func (ll Level) Enabled(entry Level) bool {
	if ll == "" {
		ll = LevelInfo
	}
	return ll.severity() <= entry.severity()
}

func (ll Level) severity() int {
	for i, l := range levels {
		if l == ll {
			return i
		}
	}
	return len(levels)
}

var levelEnvKeys = []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"}

func levelFromEnv() (Level, bool) {
	for _, key := range levelEnvKeys {
		if raw, ok := os.LookupEnv(key); ok {
			if level, err := ParseLevel(raw); err == nil {
				return level, true
			}
		}
	}
	return "", false
}

var defaultLevel = LevelInfo

func init() {
	if level, ok := levelFromEnv(); ok {
		defaultLevel = level
	}
}
