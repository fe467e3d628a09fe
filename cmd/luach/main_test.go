package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/config"
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestRuntime(year int, month time.Month, day int) (*runtime, *bytes.Buffer) {
	var out bytes.Buffer
	return &runtime{
		ctx:   context.Background(),
		cfg:   &config.Config{FeedName: "Luach", FeedDays: 365},
		clock: fixedClock{now: time.Date(year, month, day, 21, 0, 0, 0, time.UTC)},
		out:   &out,
	}, &out
}

// run parses args through kong and runs the selected command.
func run(t *testing.T, rt *runtime, args ...string) error {
	t.Helper()
	parser, err := kong.New(&CLI, kong.Name("luach"))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return kctx.Run(rt)
}

// calendarName decodes an iCalendar feed and returns its X-WR-CALNAME.
func calendarName(t *testing.T, data string) string {
	t.Helper()
	cal, err := ical.NewDecoder(strings.NewReader(data)).Decode()
	require.NoError(t, err)
	return cal.Props.Get("X-WR-CALNAME").Value
}

func decodeDay(t *testing.T, out *bytes.Buffer) dayView {
	t.Helper()
	var v dayView
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	return v
}

// -----------------------------------------------------------------------------
// convert / gregorian
// -----------------------------------------------------------------------------

func TestConvertCmd(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "convert", "2023-12-21"))
	v := decodeDay(t, out)

	assert.Equal(t, "2023-12-21", v.Gregorian)
	assert.Equal(t, "9 Teves 5784", v.Hebrew)
	assert.Equal(t, "Thursday", v.Weekday)
	assert.Equal(t, "Vayigash", v.UpcomingParsha)
	assert.Equal(t, "Bava Kamma 49", v.DafYomi)
	assert.Equal(t, "Shabbos 8", v.Yerushalmi)
	assert.Empty(t, v.YomTov)
	assert.False(t, v.Taanis)
}

func TestConvertCmd_DefaultsToToday(t *testing.T) {
	rt, out := newTestRuntime(2023, time.December, 22)

	require.NoError(t, run(t, rt, "convert"))
	v := decodeDay(t, out)

	assert.Equal(t, "10 Teves 5784", v.Hebrew)
	assert.Equal(t, "Tenth of Teves", v.YomTov)
	assert.True(t, v.Taanis)
}

func TestConvertCmd_Errors(t *testing.T) {
	rt, _ := newTestRuntime(2024, time.January, 1)

	assert.Error(t, run(t, rt, "convert", "21/12/2023"))

	err := run(t, rt, "molad", "0")
	assert.ErrorIs(t, err, calendar.ErrOutOfDomain)
}

func TestGregorianCmd(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "gregorian", "5784", "Adar II", "14"))
	v := decodeDay(t, out)

	assert.Equal(t, "2024-03-24", v.Gregorian)
	assert.Equal(t, "Purim", v.YomTov)
}

func TestGregorianCmd_AdarIIInRegularYear(t *testing.T) {
	rt, _ := newTestRuntime(2024, time.January, 1)

	err := run(t, rt, "gregorian", "5783", "Adar II", "1")
	assert.ErrorIs(t, err, calendar.ErrInvalidField)
}

func TestGregorianCmd_IsraelOption(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)
	rt.opts.InIsrael = true

	require.NoError(t, run(t, rt, "gregorian", "5782", "Nissan", "22"))
	v := decodeDay(t, out)

	assert.Equal(t, "Isru Chag", v.YomTov)
	assert.Equal(t, "Achrei Mos", v.Parsha)
}

// -----------------------------------------------------------------------------
// molad / year
// -----------------------------------------------------------------------------

func TestMoladCmd(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "molad", "5784", "Teves"))

	var v moladView
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, "Wednesday 2h 1m 3ch", v.Announced)
	assert.Equal(t, 2, v.Hours)
	assert.Equal(t, 1, v.Minutes)
	assert.Equal(t, 3, v.Chalakim)
	assert.Equal(t, "2023-12-12T17:40:13.504Z", v.Instant)
	assert.Equal(t, "2023-12-27T12:02:15.170Z", v.KidushLevana.EndBetweenMoldos)
}

func TestMoladCmd_DefaultsToTishrei(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "molad", "5784"))

	var v moladView
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, "Tishrei", v.Month)
	assert.Equal(t, "Friday", v.Weekday)
	assert.Equal(t, 11, v.Hours)
}

func TestYearCmd(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "year", "5784"))

	var v yearView
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.True(t, v.Leap)
	assert.Equal(t, 8, v.CyclePosition)
	assert.Equal(t, 383, v.Days)
	assert.Equal(t, "Chaserim", v.Kviah)
	assert.Equal(t, "2023-09-16", v.RoshHashana)
	assert.Equal(t, "Shabbos", v.Weekday)

	require.Len(t, v.Months, 13)
	assert.Equal(t, "Tishrei", v.Months[0].Name)
	assert.Equal(t, "Teves", v.Months[3].Name)
	assert.Equal(t, "2023-12-13", v.Months[3].Start)
	assert.Equal(t, "Wednesday 2h 1m 3ch", v.Months[3].Molad)
	assert.Equal(t, "Adar II", v.Months[6].Name)

	total := 0
	for _, m := range v.Months {
		total += m.Days
	}
	assert.Equal(t, v.Days, total)
}

func TestYearCmd_DefaultsToCurrentYear(t *testing.T) {
	rt, out := newTestRuntime(2024, time.October, 15)

	require.NoError(t, run(t, rt, "year"))

	var v yearView
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, 5785, v.Year)
}

func TestYearCmd_RejectsYearZero(t *testing.T) {
	rt, out := newTestRuntime(2024, time.October, 15)

	assert.ErrorIs(t, run(t, rt, "year", "0"), calendar.ErrOutOfDomain)
	assert.ErrorIs(t, run(t, rt, "table", "0"), calendar.ErrOutOfDomain)
	assert.Error(t, run(t, rt, "year", "next"))
	assert.Zero(t, out.Len())
}

// -----------------------------------------------------------------------------
// daf
// -----------------------------------------------------------------------------

func TestDafCmd(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "daf", "2020-01-05"))

	var v dafView
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, "Bavli", v.Talmud)
	assert.Equal(t, "Berachos", v.Masechta)
	assert.Equal(t, 2, v.Page)
	assert.Equal(t, 14, v.Cycle)
}

func TestDafCmd_Yerushalmi(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "daf", "--yerushalmi", "2024-02-04"))

	var v dafView
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, "Yerushalmi", v.Talmud)
	assert.Equal(t, "Shabbos", v.Masechta)
	assert.Equal(t, 53, v.Page)
	assert.Zero(t, v.Cycle)
}

func TestDafCmd_NoDaf(t *testing.T) {
	rt, _ := newTestRuntime(2024, time.January, 1)

	err := run(t, rt, "daf", "--yerushalmi", "2023-09-25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Yerushalmi daf on 2023-09-25")

	assert.Error(t, run(t, rt, "daf", "1900-01-01"))
}

// -----------------------------------------------------------------------------
// table / feed
// -----------------------------------------------------------------------------

func TestTableCmd_JSONMonth(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "table", "5784", "--month", "Teves", "--format", "json"))

	var days []dayView
	require.NoError(t, json.Unmarshal(out.Bytes(), &days))
	require.Len(t, days, 29)
	assert.Equal(t, "2023-12-13", days[0].Gregorian)
	assert.True(t, days[0].RoshChodesh)
	assert.Equal(t, "Tenth of Teves", days[9].YomTov)
}

func TestTableCmd_Text(t *testing.T) {
	rt, out := newTestRuntime(2024, time.January, 1)

	require.NoError(t, run(t, rt, "table", "5784"))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "=== Luach for 5784 ===\n"))
	assert.Contains(t, text, "Parshas Vayigash")
	assert.Contains(t, text, "(Shabbos Shekalim)")
	// Header, blank line, then one line per day.
	assert.Equal(t, 2+383, strings.Count(text, "\n"))
}

func TestTableCmd_MissingMonth(t *testing.T) {
	rt, _ := newTestRuntime(2024, time.January, 1)

	err := run(t, rt, "table", "5785", "--month", "Adar II")
	assert.ErrorIs(t, err, calendar.ErrInvalidField)
}

func TestFeedCmd_File(t *testing.T) {
	rt, _ := newTestRuntime(2023, time.December, 7)
	path := filepath.Join(t.TempDir(), "luach.ics")

	require.NoError(t, run(t, rt, "feed", "--days", "10", "--name", "Shul", "-o", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Shul", calendarName(t, string(data)))
	assert.Contains(t, string(data), "SUMMARY:Chanukah: day 1")
	assert.NotContains(t, string(data), "SUMMARY:Daf Yomi")
}

func TestFeedCmd_Stdout(t *testing.T) {
	rt, out := newTestRuntime(2023, time.December, 7)
	rt.cfg.FeedDays = 3

	require.NoError(t, run(t, rt, "feed", "--daf"))
	assert.Equal(t, "Luach", calendarName(t, out.String()))
	assert.Equal(t, 3, strings.Count(out.String(), "SUMMARY:Daf Yomi"))
}

func TestFeedCmd_OverwritesFile(t *testing.T) {
	rt, _ := newTestRuntime(2023, time.December, 7)
	path := filepath.Join(t.TempDir(), "luach.ics")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, run(t, rt, "feed", "--days", "3", "-o", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "BEGIN:VCALENDAR"))
	assert.NotContains(t, string(data), "stale")
}

func TestNewRunID(t *testing.T) {
	a, b := newRunID(), newRunID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
