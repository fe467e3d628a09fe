package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/dafyomi"
	"github.com/zapponejosh/luach/internal/feed"
	"github.com/zapponejosh/luach/internal/logger"
)

// parseDateOr parses a YYYY-MM-DD argument, defaulting to today.
func parseDateOr(rt *runtime, s string) (time.Time, error) {
	if s == "" {
		return rt.today(), nil
	}
	t, err := calendar.ParseDateString(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// yearOr parses a Hebrew year argument, defaulting to the current year.
// An explicit year below 1 is out of domain.
func yearOr(rt *runtime, s string) (int, error) {
	if s == "" {
		d, err := calendar.FromGregorian(rt.today())
		if err != nil {
			return 0, err
		}
		return d.Year, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", s, err)
	}
	if year < 1 {
		return 0, fmt.Errorf("year %d: %w", year, calendar.ErrOutOfDomain)
	}
	return year, nil
}

// ConvertCmd converts a Gregorian date.
type ConvertCmd struct {
	Date string `arg:"" optional:"" help:"Gregorian date (YYYY-MM-DD), default today"`
}

func (c *ConvertCmd) Run(rt *runtime) error {
	t, err := parseDateOr(rt, c.Date)
	if err != nil {
		return err
	}
	cal, err := calendar.New(t)
	if err != nil {
		return err
	}
	cal.Options = rt.opts

	logger.Debug(rt.ctx, "converted date", slog.String("gregorian", calendar.FormatDate(t)), slog.String("hebrew", cal.Date().String()))
	return writeJSON(rt.out, newDayView(cal))
}

// GregorianCmd converts a Hebrew date.
type GregorianCmd struct {
	Year  int    `arg:"" help:"Hebrew year, e.g. 5784"`
	Month string `arg:"" help:"Hebrew month name or number (1=Nissan .. 13=Adar II)"`
	Day   int    `arg:"" help:"Day of the month"`
}

func (c *GregorianCmd) Run(rt *runtime) error {
	m, err := calendar.ParseMonth(c.Month)
	if err != nil {
		return err
	}
	cal, err := calendar.NewHebrew(c.Year, m, c.Day)
	if err != nil {
		return err
	}
	cal.Options = rt.opts
	return writeJSON(rt.out, newDayView(cal))
}

// MoladCmd prints the molad of a month.
type MoladCmd struct {
	Year  int    `arg:"" help:"Hebrew year"`
	Month string `arg:"" optional:"" default:"Tishrei" help:"Hebrew month name or number"`
}

func (c *MoladCmd) Run(rt *runtime) error {
	m, err := calendar.ParseMonth(c.Month)
	if err != nil {
		return err
	}
	molad, err := calendar.MoladOf(c.Year, m)
	if err != nil {
		return err
	}
	return writeJSON(rt.out, newMoladView(c.Year, m, molad))
}

// YearCmd describes a Hebrew year.
type YearCmd struct {
	Year string `arg:"" optional:"" help:"Hebrew year, default the current one"`
}

func (c *YearCmd) Run(rt *runtime) error {
	year, err := yearOr(rt, c.Year)
	if err != nil {
		return err
	}

	v, err := newYearView(year)
	if err != nil {
		return err
	}
	return writeJSON(rt.out, v)
}

// DafCmd prints the Daf Yomi.
type DafCmd struct {
	Date       string `arg:"" optional:"" help:"Gregorian date (YYYY-MM-DD), default today"`
	Yerushalmi bool   `help:"Use the Yerushalmi cycle instead of the Bavli"`
}

func (c *DafCmd) Run(rt *runtime) error {
	t, err := parseDateOr(rt, c.Date)
	if err != nil {
		return err
	}

	lookup := dafyomi.BavliDaf
	if c.Yerushalmi {
		lookup = dafyomi.YerushalmiDaf
	}
	daf, ok := lookup(t)
	if !ok {
		return fmt.Errorf("no %s daf on %s", talmudOf(c.Yerushalmi), calendar.FormatDate(t))
	}

	v := dafView{
		Date:     calendar.FormatDate(t),
		Talmud:   daf.Talmud.String(),
		Masechta: daf.Name(),
		Page:     daf.Page,
	}
	if cycle, ok := dafyomi.BavliCycle(t); ok && !c.Yerushalmi {
		v.Cycle = cycle.Number
	}
	return writeJSON(rt.out, v)
}

func talmudOf(yerushalmi bool) dafyomi.Talmud {
	if yerushalmi {
		return dafyomi.Yerushalmi
	}
	return dafyomi.Bavli
}

// TableCmd prints every day of a Hebrew year, one line per day or as a
// JSON array.
type TableCmd struct {
	Year   string `arg:"" optional:"" help:"Hebrew year, default the current one"`
	Month  string `help:"Only print this month"`
	Format string `enum:"text,json" default:"text" help:"Output format (text, json)"`
}

func (c *TableCmd) Run(rt *runtime) error {
	year, err := yearOr(rt, c.Year)
	if err != nil {
		return err
	}

	var only calendar.Month
	if c.Month != "" {
		m, err := calendar.ParseMonth(c.Month)
		if err != nil {
			return err
		}
		if !calendar.MonthExists(m, year) {
			return fmt.Errorf("%s does not occur in %d: %w", m, year, calendar.ErrInvalidField)
		}
		only = m
	}

	cal, err := calendar.NewHebrew(year, calendar.Tishrei, 1)
	if err != nil {
		return err
	}
	cal.Options = rt.opts

	var days []dayView
	for ; cal.JewishYear() == year; cal.Forward() {
		if only != 0 && cal.JewishMonth() != only {
			continue
		}
		days = append(days, newDayView(cal))
	}
	logger.Debug(rt.ctx, "built table", slog.Int("year", year), slog.Int("days", len(days)))

	if c.Format == "json" {
		return writeJSON(rt.out, days)
	}
	return writeTable(rt.out, year, days)
}

func writeTable(w io.Writer, year int, days []dayView) error {
	if _, err := fmt.Fprintf(w, "=== Luach for %d ===\n\n", year); err != nil {
		return err
	}
	for _, d := range days {
		line := fmt.Sprintf("%s  %-22s %-9s", d.Gregorian, d.Hebrew, d.Weekday)
		if d.YomTov != "" {
			line += "  " + d.YomTov
		}
		if d.Parsha != "" {
			line += "  Parshas " + d.Parsha
		}
		if d.SpecialShabbos != "" {
			line += "  (Shabbos " + d.SpecialShabbos + ")"
		}
		if d.RoshChodesh {
			line += "  Rosh Chodesh"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FeedCmd writes an iCalendar feed.
type FeedCmd struct {
	Days   int    `help:"Number of days to cover (default LUACH_FEED_DAYS)"`
	Name   string `help:"Calendar name (default LUACH_FEED_NAME)"`
	Daf    bool   `help:"Include the Bavli Daf Yomi"`
	Output string `short:"o" type:"path" help:"Write to this file instead of stdout"`
}

func (c *FeedCmd) Run(rt *runtime) (err error) {
	opts := feed.Options{
		Name:     rt.cfg.FeedName,
		Days:     rt.cfg.FeedDays,
		Daf:      c.Daf,
		Calendar: rt.opts,
	}
	if c.Days != 0 {
		opts.Days = c.Days
	}
	if c.Name != "" {
		opts.Name = c.Name
	}
	if opts.Days < 1 {
		return errors.New("--days must be positive")
	}

	w := rt.out
	if c.Output != "" {
		if _, serr := os.Stat(c.Output); serr == nil {
			logger.Warn(rt.ctx, "overwriting existing feed file", slog.String("output", c.Output))
		}
		f, ferr := os.Create(c.Output)
		if ferr != nil {
			return fmt.Errorf("create feed file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	gen := &feed.Generator{Clock: rt.clock}
	n, err := gen.Write(rt.ctx, w, opts)
	if err != nil {
		return err
	}
	logger.Info(rt.ctx, "wrote feed", slog.Int("events", n), slog.String("output", c.Output))
	return nil
}
