package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/riskibarqy/go-semcommit/internal/commit"
	"github.com/riskibarqy/go-semcommit/internal/defaults"
)

const defaultLogLevel = "warn"

// Options captures all user facing configuration.
type Options struct {
	Mode         commit.Mode
	LogLevel     string
	DefaultsPath string
}

// Default returns the options used when no flags are given.
func Default() Options {
	return Options{
		Mode:         commit.ModeNormal,
		LogLevel:     defaultLogLevel,
		DefaultsPath: defaults.DefaultPath(),
	}
}

// Bind registers the CLI flags on fs, writing into opts.
func Bind(fs *pflag.FlagSet, opts *Options) {
	fs.VarP(&opts.Mode, "mode", "m", `commit type menu: "normal" or "emoji"`)
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn or error")
}

// Validate checks the options after flag parsing.
func (o Options) Validate() error {
	if _, err := ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", o.Mode.String()),
		slog.String("log_level", o.LogLevel),
		slog.String("defaults_path", o.DefaultsPath),
	)
}

// ParseLevel maps a --log-level value to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("invalid log level %q", s)
}
