package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/dafyomi"
)

// dayView is the JSON shape of one resolved day.
type dayView struct {
	Gregorian      string `json:"gregorian"`
	Hebrew         string `json:"hebrew"`
	Year           int    `json:"year"`
	Month          string `json:"month"`
	Day            int    `json:"day"`
	Weekday        string `json:"weekday"`
	YomTov         string `json:"yom_tov,omitempty"`
	Chanukah       int    `json:"chanukah_day,omitempty"`
	RoshChodesh    bool   `json:"rosh_chodesh,omitempty"`
	Taanis         bool   `json:"taanis,omitempty"`
	CholHamoed     bool   `json:"chol_hamoed,omitempty"`
	AssurBemelacha bool   `json:"assur_bemelacha,omitempty"`
	Parsha         string `json:"parsha,omitempty"`
	UpcomingParsha string `json:"upcoming_parsha"`
	SpecialShabbos string `json:"special_shabbos,omitempty"`
	DafYomi        string `json:"daf_yomi,omitempty"`
	Yerushalmi     string `json:"yerushalmi,omitempty"`
}

func newDayView(c *calendar.Calendar) dayView {
	d := c.Date()
	g := c.Gregorian()
	v := dayView{
		Gregorian:      calendar.FormatDate(g),
		Hebrew:         d.String(),
		Year:           d.Year,
		Month:          d.Month.String(),
		Day:            d.Day,
		Weekday:        c.DayOfWeek().String(),
		RoshChodesh:    c.IsRoshChodesh(),
		Taanis:         c.IsTaanis(),
		CholHamoed:     c.IsCholHamoed(),
		AssurBemelacha: c.IsYomTovAssurBemelacha(),
		UpcomingParsha: c.UpcomingParshah().String(),
	}
	if yt, ok := c.YomTov(); ok {
		v.YomTov = yt.String()
	}
	if n, ok := c.DayOfChanukah(); ok {
		v.Chanukah = n
	}
	if p := c.Parshah(); p != calendar.NoParsha {
		v.Parsha = p.String()
	}
	if s := c.SpecialShabbos(); s != calendar.NoParsha {
		v.SpecialShabbos = s.String()
	}
	if daf, ok := dafyomi.BavliDaf(g); ok {
		v.DafYomi = daf.String()
	}
	if daf, ok := dafyomi.YerushalmiDaf(g); ok {
		v.Yerushalmi = daf.String()
	}
	return v
}

// moladView is the JSON shape of a molad and its Kiddush Levana window.
type moladView struct {
	Year         int              `json:"year"`
	Month        string           `json:"month"`
	Announced    string           `json:"announced"`
	Weekday      string           `json:"weekday"`
	Hours        int              `json:"hours"`
	Minutes      int              `json:"minutes"`
	Chalakim     int              `json:"chalakim"`
	Instant      string           `json:"instant"`
	KidushLevana kidushLevanaView `json:"kidush_levana"`
}

type kidushLevanaView struct {
	Start3Days       string `json:"start_3_days"`
	Start7Days       string `json:"start_7_days"`
	EndBetweenMoldos string `json:"end_between_moldos"`
	End15Days        string `json:"end_15_days"`
}

func newMoladView(year int, month calendar.Month, m calendar.Molad) moladView {
	kl := m.KidushLevana()
	return moladView{
		Year:      year,
		Month:     month.String(),
		Announced: m.String(),
		Weekday:   m.Weekday.String(),
		Hours:     m.Hours,
		Minutes:   m.Minutes(),
		Chalakim:  m.Chalakim(),
		Instant:   formatInstant(m.Instant()),
		KidushLevana: kidushLevanaView{
			Start3Days:       formatInstant(kl.Start3Days),
			Start7Days:       formatInstant(kl.Start7Days),
			EndBetweenMoldos: formatInstant(kl.EndBetweenMoldos),
			End15Days:        formatInstant(kl.End15Days),
		},
	}
}

// yearView is the JSON shape of a resolved Hebrew year.
type yearView struct {
	Year          int         `json:"year"`
	Leap          bool        `json:"leap"`
	CyclePosition int         `json:"cycle_position"`
	Days          int         `json:"days"`
	Kviah         string      `json:"kviah"`
	RoshHashana   string      `json:"rosh_hashana"`
	Weekday       string      `json:"rosh_hashana_weekday"`
	Months        []monthView `json:"months"`
}

type monthView struct {
	Name  string `json:"name"`
	Days  int    `json:"days"`
	Start string `json:"start"`
	Molad string `json:"molad"`
}

func newYearView(year int) (yearView, error) {
	info := calendar.ResolveYear(year)
	rh, err := calendar.NewDate(year, calendar.Tishrei, 1)
	if err != nil {
		return yearView{}, err
	}

	v := yearView{
		Year:          year,
		Leap:          info.Leap,
		CyclePosition: calendar.CyclePositionOf(year).Position,
		Days:          info.Days,
		Kviah:         info.Kviah.String(),
		RoshHashana:   calendar.FormatDate(rh.Gregorian()),
		Weekday:       info.RoshHashana.String(),
	}

	// Walk the months in calendar order starting from Tishrei.
	start := rh
	for i := 0; i < calendar.MonthsInYear(year); i++ {
		m := start.Month
		molad, err := calendar.MoladOf(year, m)
		if err != nil {
			return yearView{}, err
		}
		days := info.MonthDays(m)
		v.Months = append(v.Months, monthView{
			Name:  m.String(),
			Days:  days,
			Start: calendar.FormatDate(start.Gregorian()),
			Molad: molad.String(),
		})
		if start, err = start.AddDays(days); err != nil {
			return yearView{}, err
		}
	}
	return v, nil
}

// dafView is the JSON shape of a Daf Yomi lookup.
type dafView struct {
	Date     string `json:"date"`
	Talmud   string `json:"talmud"`
	Masechta string `json:"masechta"`
	Page     int    `json:"page"`
	Cycle    int    `json:"cycle,omitempty"`
}

func formatInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
