package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a Hebrew month. Numbering follows the Torah's count from Nissan,
// while the civil year (and its number) begins at Tishrei.
type Month int

// Hebrew months. In a leap year Adar is Adar I and AdarII follows it.
const (
	Nissan Month = iota + 1
	Iyar
	Sivan
	Tammuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Teves
	Shevat
	Adar
	AdarII
)

var monthNames = [...]string{
	Nissan:   "Nissan",
	Iyar:     "Iyar",
	Sivan:    "Sivan",
	Tammuz:   "Tammuz",
	Av:       "Av",
	Elul:     "Elul",
	Tishrei:  "Tishrei",
	Cheshvan: "Cheshvan",
	Kislev:   "Kislev",
	Teves:    "Teves",
	Shevat:   "Shevat",
	Adar:     "Adar",
	AdarII:   "Adar II",
}

// String returns the transliterated month name used in logs and JSON keys.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m]
}

// Valid reports whether m is one of the thirteen month constants.
// It says nothing about whether the month exists in a given year; see
// MonthExists for that.
func (m Month) Valid() bool {
	return m >= Nissan && m <= AdarII
}

// monthAliases maps normalized spellings to months. Keys are lower case
// with spaces, dashes and apostrophes removed.
var monthAliases = map[string]Month{
	"nissan": Nissan, "nisan": Nissan,
	"iyar": Iyar, "iyyar": Iyar,
	"sivan": Sivan,
	"tammuz": Tammuz, "tamuz": Tammuz,
	"av": Av, "menachemav": Av,
	"elul": Elul,
	"tishrei": Tishrei, "tishri": Tishrei,
	"cheshvan": Cheshvan, "heshvan": Cheshvan, "marcheshvan": Cheshvan,
	"kislev": Kislev,
	"teves": Teves, "tevet": Teves,
	"shevat": Shevat, "shvat": Shevat,
	"adar": Adar, "adari": Adar, "adar1": Adar,
	"adarii": AdarII, "adar2": AdarII, "adarsheni": AdarII,
}

// ParseMonth accepts a month name in common transliterations ("Teves",
// "Tevet", "Adar II") or its number, 1 (Nissan) through 13 (Adar II).
func ParseMonth(s string) (Month, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if m := Month(n); m.Valid() {
			return m, nil
		}
		return 0, &FieldError{Field: "month", Value: n, Reason: monthReason(Month(n), 0)}
	}

	key := strings.ToLower(s)
	key = strings.NewReplacer(" ", "", "-", "", "'", "", "_", "").Replace(key)
	if m, ok := monthAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown month %q: %w", s, ErrInvalidField)
}

// MonthExists reports whether month m occurs in the Hebrew year.
func MonthExists(m Month, year int) bool {
	if m == AdarII {
		return IsLeapYear(year)
	}
	return m.Valid()
}

// monthsOf returns the months of a year in calendar order, Tishrei first.
func monthsOf(year int) []Month {
	if IsLeapYear(year) {
		return leapYearMonths[:]
	}
	return regularYearMonths[:]
}

var (
	regularYearMonths = [...]Month{Tishrei, Cheshvan, Kislev, Teves, Shevat, Adar, Nissan, Iyar, Sivan, Tammuz, Av, Elul}
	leapYearMonths    = [...]Month{Tishrei, Cheshvan, Kislev, Teves, Shevat, Adar, AdarII, Nissan, Iyar, Sivan, Tammuz, Av, Elul}
)

// monthOfYear is the 1-based position of m counted from Tishrei.
func monthOfYear(year int, m Month) int {
	if IsLeapYear(year) {
		return (int(m)+6)%13 + 1
	}
	return (int(m)+5)%12 + 1
}

// Weekday is a day of the week, 1=Sunday through 7=Shabbos.
type Weekday int

// Days of the week.
const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Shabbos
)

var weekdayNames = [...]string{"", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Shabbos"}

func (w Weekday) String() string {
	if w < Sunday || w > Shabbos {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Time converts w to the standard library's zero-based weekday.
func (w Weekday) Time() time.Weekday {
	return time.Weekday(w - 1)
}

// weekdayOfFixed maps an R.D. day number to its weekday.
// R.D. 0 is a Sunday.
func weekdayOfFixed(fixed int) Weekday {
	return Weekday(floorMod(fixed, 7) + 1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
