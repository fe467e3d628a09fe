// Package main is the entry point for the luach command line tool.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/config"
	"github.com/zapponejosh/luach/internal/feed"
	"github.com/zapponejosh/luach/internal/logger"
)

// CLI defines the command-line interface for luach.
var CLI struct {
	// Global flags
	Israel bool `help:"Use the Israel yom tov and parsha schedule (overrides LUACH_IN_ISRAEL)"`
	Modern bool `help:"Include modern Israeli holidays (overrides LUACH_MODERN_HOLIDAYS)"`

	Convert   ConvertCmd   `cmd:"" help:"Convert a Gregorian date to the Hebrew calendar"`
	Gregorian GregorianCmd `cmd:"" help:"Convert a Hebrew date to the Gregorian calendar"`
	Molad     MoladCmd     `cmd:"" help:"Print the molad of a Hebrew month"`
	Year      YearCmd      `cmd:"" help:"Describe a Hebrew year"`
	Daf       DafCmd       `cmd:"" help:"Print the Daf Yomi for a date"`
	Table     TableCmd     `cmd:"" help:"Print every day of a Hebrew year"`
	Feed      FeedCmd      `cmd:"" help:"Write an iCalendar feed of upcoming days"`
}

// runtime carries what every command needs. It is bound into kong so
// each Run method receives it.
type runtime struct {
	ctx   context.Context
	cfg   *config.Config
	opts  calendar.Options
	clock feed.Clock
	out   io.Writer
}

// today returns the clock's civil date at midnight UTC.
func (rt *runtime) today() time.Time {
	y, m, d := rt.clock.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("luach"),
		kong.Description("Hebrew calendar: dates, molad, yom tov, parsha and Daf Yomi"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Logs go to stderr; stdout carries command output.
	logger.Setup(cfg, os.Stderr)

	ctx := logger.WithRunID(context.Background(), newRunID())
	logger.Debug(ctx, "starting luach",
		slog.String("command", kctx.Command()),
		slog.String("env", cfg.Env),
		slog.String("log_level", cfg.LogLevel),
	)

	opts := cfg.CalendarOptions()
	opts.InIsrael = opts.InIsrael || CLI.Israel
	opts.UseModernHolidays = opts.UseModernHolidays || CLI.Modern

	err = kctx.Run(&runtime{
		ctx:   ctx,
		cfg:   cfg,
		opts:  opts,
		clock: feed.RealClock{},
		out:   os.Stdout,
	})
	if err != nil {
		logger.Error(ctx, "command failed", err, slog.String("command", kctx.Command()))
	}
	kctx.FatalIfErrorf(err)
}

// newRunID returns a short ID tagging every log line of one invocation.
func newRunID() string {
	return uuid.NewString()[:8]
}
