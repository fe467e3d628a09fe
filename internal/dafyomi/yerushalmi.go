package dafyomi

import (
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
)

const (
	// yerushalmiStartJDN is 2 February 1980, the first day of the cycle.
	yerushalmiStartJDN = 2444272

	// yerushalmiDafs is the page count of the whole Vilna Yerushalmi.
	yerushalmiDafs = 1554
)

var yerushalmiPages = [...]int{
	68, 37, 34, 44, 31, 59, 26, 33, 28, 20, 13, 92, 65, 71, 22, 22, 42, 26, 26, 33,
	34, 22, 19, 85, 72, 47, 40, 47, 54, 48, 44, 37, 34, 44, 9, 57, 37, 19, 13,
}

// YerushalmiDaf returns the Yerushalmi page learned on the civil date of
// t. No page is learned on Yom Kippur or Tisha B'Av, and those days do
// not advance the cycle. The bool is false on those days and before the
// first cycle began on 2 February 1980.
func YerushalmiDaf(t time.Time) (Daf, bool) {
	jdn := calendar.JulianDayNumberOf(t)
	if jdn < yerushalmiStartJDN {
		return Daf{}, false
	}
	date, err := calendar.FromJulianDayNumber(jdn)
	if err != nil || isYerushalmiRestDay(date) {
		return Daf{}, false
	}

	// Each cycle is stretched by the rest days that fall inside it.
	start, next := yerushalmiStartJDN, yerushalmiStartJDN
	for jdn >= next {
		start = next
		next = start + yerushalmiDafs
		next += restDaysBetween(start, next)
	}

	total := jdn - start - restDaysBetween(start, jdn)
	for i, count := range yerushalmiPages {
		if total < count {
			return Daf{Talmud: Yerushalmi, Masechta: i, Page: total + 1}, true
		}
		total -= count
	}
	return Daf{}, false
}

func isYerushalmiRestDay(d calendar.Date) bool {
	yt, ok := calendar.HolidayOf(d, calendar.Options{})
	return ok && (yt == calendar.YomKippur || yt == calendar.TishaBeav)
}

// restDaysBetween counts the 10 Tishrei and 9 Av dates strictly between
// two Julian Day Numbers.
func restDaysBetween(from, to int) int {
	first, err := calendar.FromJulianDayNumber(from)
	if err != nil {
		return 0
	}
	last, err := calendar.FromJulianDayNumber(to)
	if err != nil {
		return 0
	}

	n := 0
	for year := first.Year; year <= last.Year; year++ {
		for _, d := range []calendar.Date{
			calendar.MustDate(year, calendar.Tishrei, 10),
			calendar.MustDate(year, calendar.Av, 9),
		} {
			if jdn := d.JulianDayNumber(); jdn > from && jdn < to {
				n++
			}
		}
	}
	return n
}
