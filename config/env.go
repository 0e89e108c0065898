package config

import (
	"log/slog"
	"os"
	"strings"
)

var (
	envTrue  = []string{"1", "yes", "true", "on"}
	envFalse = []string{"0", "no", "false", "off"}
)

// envVal looks up an environment variable with a case-insensitive key.
// The defaultVal is returned if the variable isn't set or is blank.
func envVal(key string, defaultVal string) string {
	key = strings.ToLower(key)
	for _, entry := range os.Environ() {
		k, val, found := strings.Cut(entry, "=")
		if !found || strings.ToLower(k) != key {
			continue
		}
		trimmed := strings.TrimSpace(val)
		if len(trimmed) == 0 {
			return defaultVal
		}
		return trimmed
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	sval := strings.ToLower(envVal(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	for _, v := range envTrue {
		if sval == v {
			return true
		}
	}
	for _, v := range envFalse {
		if sval == v {
			return false
		}
	}
	return defaultVal
}

func envLevel(key string, defaultVal slog.Level) slog.Level {
	sval := envVal(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(sval)); err != nil {
		return defaultVal
	}
	return level
}
