// Package yatzy parses the terminal game's configuration and runs a hot-seat
// session on stdin and stdout.
package yatzy

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	entrypoint "github.com/louisbranch/yatzy/internal/platform/cmd"
	"github.com/louisbranch/yatzy/internal/platform/config"
	"github.com/louisbranch/yatzy/internal/platform/i18n/catalog"
	"github.com/louisbranch/yatzy/internal/random"
	"github.com/louisbranch/yatzy/internal/yatzy/game"
)

// Config holds yatzy command configuration.
type Config struct {
	Players  string `env:"YATZY_PLAYERS" envDefault:"Player 1,Player 2"`
	Locale   string `env:"YATZY_LOCALE" envDefault:"en-US"`
	Seed     int64  `env:"YATZY_SEED"`
	LogLevel string `env:"YATZY_LOG_LEVEL" envDefault:"info"`
}

// Names returns the roster from Players.
func (c Config) Names() []string {
	return config.SplitList(c.Players)
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Players, "players", cfg.Players, "Comma separated player names, in seat order")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Display language (en-US, sv-SE)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Dice seed; 0 draws a random one")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Event log level (debug, info, warn, error, off)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays a session on the process terminal until quit or ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceYatzy, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	})
}

func run(ctx context.Context, cfg Config, in io.Reader, out, logOut io.Writer) error {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.DiscardHandler)
	if level != pterm.LogLevelDisabled {
		logger = slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(logOut).WithLevel(level)))
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return err
	}
	locale := catalog.Default().Match(cfg.Locale)
	logger.Debug("session configured", "locale", locale, "seed", seed)

	session := NewSession(out, locale, logger)
	g, err := game.New(cfg.Names(), game.WithSeed(seed), game.WithListener(session))
	if err != nil {
		return err
	}
	return session.Play(ctx, g, in)
}

func parseLogLevel(value string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "none":
		return pterm.LogLevelDisabled, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", value)
	}
}
