/*
Package config holds the process-wide settings of the assertion library.

Settings are read from the environment the first time they're needed, and may be overridden with [Set] or with flags bound by [Settings.BindFlags].

	TRUTH_STACK_TRACES  Whether failures capture the calling stack (default true).
	TRUTH_LOG_LEVEL     Level for the library's own logging: debug, info, warn, error (default warn).

Environment keys are compared case-insensitively, and blank or invalid values fall back to the default.
*/
package config

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	flag "github.com/spf13/pflag"
)

const (
	EnvStackTraces = "TRUTH_STACK_TRACES"
	EnvLogLevel    = "TRUTH_LOG_LEVEL"

	FlagStackTraces = "truth-stack-traces"
	FlagLogLevel    = "truth-log-level"
)

// Settings configures cross-cutting behavior that doesn't change the content of failure messages.
type Settings struct {
	StackTraces bool       // StackTraces enables capturing the caller's stack when a failure is created.
	LogLevel    slog.Level // LogLevel is the minimum level of the library's log output.
	LogOutput   io.Writer  // LogOutput is where logs are written, [os.Stderr] if nil.
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		StackTraces: true,
		LogLevel:    slog.LevelWarn,
	}
}

// FromEnv returns [Default] settings, overridden by any environment variables that are set.
func FromEnv() Settings {
	s := Default()
	s.StackTraces = envBool(EnvStackTraces, s.StackTraces)
	s.LogLevel = envLevel(EnvLogLevel, s.LogLevel)
	return s
}

// BindFlags registers flags that modify s when parsed.
// The current values in s are used as the flag defaults.
func (s *Settings) BindFlags(fs *flag.FlagSet) {
	fs.BoolVar(&s.StackTraces, FlagStackTraces, s.StackTraces, "Capture the calling stack when an assertion fails")
	fs.Var((*levelValue)(&s.LogLevel), FlagLogLevel, "Minimum level of assertion library logging (debug, info, warn, error)")
}

var _ flag.Value = (*levelValue)(nil)

type levelValue slog.Level

func (l *levelValue) String() string {
	return slog.Level(*l).String()
}

func (l *levelValue) Set(s string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return err
	}
	*l = levelValue(level)
	return nil
}

func (l *levelValue) Type() string {
	return "level"
}

var (
	current  atomic.Pointer[Settings]
	loadOnce sync.Once
)

// Current returns the active settings, loading them with [FromEnv] on first use.
func Current() Settings {
	loadOnce.Do(func() {
		if current.Load() == nil {
			s := FromEnv()
			current.CompareAndSwap(nil, &s)
		}
	})
	return *current.Load()
}

// Set replaces the active settings.
// This is concurrency safe, but affects every assertion in the process.
func Set(s Settings) {
	loadOnce.Do(func() {})
	current.Store(&s)
}

// Logger returns a logger for the library's own diagnostics, using the [Current] settings.
func Logger() *slog.Logger {
	s := Current()
	out := s.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return slog.New(NewDedupeHandler(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: s.LogLevel,
	}))).WithGroup("truth")
}
