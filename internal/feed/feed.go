// Package feed renders a span of the Hebrew calendar as an iCalendar
// (RFC 5545) feed of all-day events: festivals and fasts, Rosh Chodesh,
// Chanukah, the weekly parsha, special Shabbosos and optionally the Bavli
// Daf Yomi.
package feed

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/dafyomi"
	"github.com/zapponejosh/luach/internal/logger"
)

// Kind classifies an Entry. It is written to the CATEGORIES property.
type Kind string

const (
	KindYomTov         Kind = "yom-tov"
	KindRoshChodesh    Kind = "rosh-chodesh"
	KindChanukah       Kind = "chanukah"
	KindParsha         Kind = "parsha"
	KindSpecialShabbos Kind = "special-shabbos"
	KindDafYomi        Kind = "daf-yomi"
)

const (
	prodID      = "-//Luach//Hebrew Calendar Feed//EN"
	uidDomain   = "luach"
	uidHashSize = 8

	// stubCalendar is returned when a span has no events. go-ical refuses
	// to encode a calendar without components.
	stubCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + prodID + "\r\nEND:VCALENDAR\r\n"
)

// ErrNoDays is returned when Options.Days is not positive.
var ErrNoDays = errors.New("feed must cover at least one day")

// Options selects what a feed covers.
type Options struct {
	Name     string           // X-WR-CALNAME
	Days     int              // number of days starting today
	Daf      bool             // include the Bavli Daf Yomi
	Calendar calendar.Options // Israel or diaspora, modern holidays
}

// Entry is one all-day event of the feed.
type Entry struct {
	Date    time.Time // civil date at midnight UTC
	Hebrew  calendar.Date
	Kind    Kind
	Summary string
}

// UID returns a stable identifier so calendar clients update events in
// place across refreshes.
func (e Entry) UID() string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", e.Kind, calendar.FormatDate(e.Date), e.Summary)))
	return fmt.Sprintf("%x@%s", sum[:uidHashSize], uidDomain)
}

// Generator builds feeds starting from the clock's current civil date.
type Generator struct {
	Clock Clock
}

// Entries lists the events of opts.Days consecutive days starting today.
func (g *Generator) Entries(ctx context.Context, opts Options) ([]Entry, error) {
	if opts.Days < 1 {
		return nil, ErrNoDays
	}

	now := g.Clock.Now()
	y, m, d := now.Date()
	day, err := calendar.FromGregorian(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for i := 0; i < opts.Days; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, entriesOf(day, opts)...)
		day = day.Next()
	}
	return entries, nil
}

// entriesOf returns the events falling on a single day.
func entriesOf(d calendar.Date, opts Options) []Entry {
	civil := d.Gregorian()
	var out []Entry
	add := func(kind Kind, summary string) {
		out = append(out, Entry{Date: civil, Hebrew: d, Kind: kind, Summary: summary})
	}

	if yt, ok := calendar.HolidayOf(d, opts.Calendar); ok && yt != calendar.Chanukah {
		add(KindYomTov, yt.String())
	}
	if n, ok := calendar.DayOfChanukah(d); ok {
		add(KindChanukah, fmt.Sprintf("Chanukah: day %d", n))
	}
	if calendar.IsRoshChodesh(d) {
		add(KindRoshChodesh, "Rosh Chodesh "+roshChodeshMonth(d).String())
	}

	if p := calendar.ParshaOf(d, opts.Calendar.InIsrael); p != calendar.NoParsha {
		add(KindParsha, "Parshas "+p.String())
	}
	if s := calendar.SpecialShabbosOf(d, opts.Calendar.InIsrael); s != calendar.NoParsha {
		add(KindSpecialShabbos, "Shabbos "+s.String())
	}

	if opts.Daf {
		if daf, ok := dafyomi.BavliDaf(civil); ok {
			add(KindDafYomi, "Daf Yomi: "+daf.String())
		}
	}
	return out
}

// roshChodeshMonth names the month being announced. The 30th of a month
// is the first day of Rosh Chodesh for the month that follows.
func roshChodeshMonth(d calendar.Date) calendar.Month {
	if d.Day == 30 {
		return d.Next().Month
	}
	return d.Month
}

// Write encodes the feed for opts to w and returns the number of events
// written.
func (g *Generator) Write(ctx context.Context, w io.Writer, opts Options) (int, error) {
	start := time.Now()
	log := logger.FromContext(ctx).With(
		slog.String("component", "feed"),
		slog.Int("days", opts.Days),
	)
	log.DebugContext(ctx, "generating feed")

	entries, err := g.Entries(ctx, opts)
	if err != nil {
		return 0, err
	}

	if len(entries) == 0 {
		log.InfoContext(ctx, "feed has no events")
		_, err := io.WriteString(w, stubCalendar)
		return 0, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	if opts.Name != "" {
		cal.Props.SetText("X-WR-CALNAME", opts.Name)
	}

	dtStamp := ical.NewProp(ical.PropDateTimeStamp)
	dtStamp.SetDateTime(g.Clock.Now().UTC())

	counts := make(map[Kind]int)
	for _, e := range entries {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, e.UID())
		event.Props.Set(dtStamp)
		event.Props.SetText(ical.PropSummary, e.Summary)
		event.Props.SetText(ical.PropDescription, e.Hebrew.String())
		event.Props.SetText(ical.PropCategories, string(e.Kind))

		dtStart := ical.NewProp(ical.PropDateTimeStart)
		dtStart.SetDate(e.Date)
		event.Props.Set(dtStart)

		cal.Children = append(cal.Children, event.Component)
		counts[e.Kind]++
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return 0, fmt.Errorf("encode feed: %w", err)
	}

	log.InfoContext(ctx, "feed generated",
		slog.Group("stats",
			slog.Int("events", len(entries)),
			slog.Int("yom_tov", counts[KindYomTov]),
			slog.Int("parsha", counts[KindParsha]),
			slog.Int("daf_yomi", counts[KindDafYomi]),
		),
		slog.Duration("duration", time.Since(start)),
	)
	return len(entries), nil
}
