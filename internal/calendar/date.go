package calendar

import (
	"fmt"
	"time"
)

// Date is an immutable Hebrew calendar date. The zero value is not a
// valid date; build one with NewDate, FromDayNumber or FromGregorian.
type Date struct {
	Year  int
	Month Month
	Day   int
}

// NewDate validates the fields against the resolved year and returns the
// date. Years before 1 are out of domain; a month or day that does not
// exist in that year is a *FieldError.
func NewDate(year int, month Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// MustDate is NewDate for literals known to be valid. It panics otherwise.
func MustDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate checks the date without building a new one.
func (d Date) Validate() error {
	if d.Year < 1 {
		return fmt.Errorf("hebrew year %d: %w", d.Year, ErrOutOfDomain)
	}
	if !MonthExists(d.Month, d.Year) {
		return &FieldError{Field: "month", Value: int(d.Month), Reason: monthReason(d.Month, d.Year)}
	}
	if n := DaysInMonth(d.Month, d.Year); d.Day < 1 || d.Day > n {
		return &FieldError{
			Field:  "day",
			Value:  d.Day,
			Reason: fmt.Sprintf("%s %d has %d days", d.Month, d.Year, n),
		}
	}
	return nil
}

// DayOfYear returns the 1-based day counted from 1 Tishrei.
func (d Date) DayOfYear() int {
	return dayOfYear(ResolveYear(d.Year), d.Month, d.Day)
}

func dayOfYear(info YearInfo, m Month, day int) int {
	n := day
	for _, mm := range monthsOf(info.Year) {
		if mm == m {
			break
		}
		n += info.MonthDays(mm)
	}
	return n
}

// DayNumber returns the absolute day count, where 1 Tishrei of year 1 is day 1.
func (d Date) DayNumber() int {
	return ElapsedDays(d.Year) + d.DayOfYear() - 1
}

// FromDayNumber inverts DayNumber.
func FromDayNumber(n int) (Date, error) {
	if n < 1 {
		return Date{}, fmt.Errorf("day number %d: %w", n, ErrOutOfDomain)
	}
	return fromDayNumber(n), nil
}

// fromDayNumber is FromDayNumber for n >= 1.
func fromDayNumber(n int) Date {
	// Start at or below the answer using the mean year length, then walk.
	year := max(1, n*19/6940-1)
	for year > 1 && ElapsedDays(year) > n {
		year--
	}
	for ElapsedDays(year+1) <= n {
		year++
	}

	info := ResolveYear(year)
	rest := n - ElapsedDays(year) + 1
	months := monthsOf(year)
	for _, m := range months[:len(months)-1] {
		days := info.MonthDays(m)
		if rest <= days {
			return Date{Year: year, Month: m, Day: rest}
		}
		rest -= days
	}
	return Date{Year: year, Month: Elul, Day: rest}
}

// FromGregorian converts the civil date of t (read in t's own location)
// to a Hebrew date.
func FromGregorian(t time.Time) (Date, error) {
	d, err := FromDayNumber(fixedFromTime(t) - epochFixed + 1)
	if err != nil {
		return Date{}, fmt.Errorf("gregorian date %s: %w", FormatDate(t), ErrOutOfDomain)
	}
	return d, nil
}

// Gregorian returns the civil date as midnight UTC.
func (d Date) Gregorian() time.Time {
	return fixedToTime(d.fixed())
}

// JulianDayNumber returns the Julian Day Number of the date.
func (d Date) JulianDayNumber() int {
	return d.fixed() + jdnOffset
}

// FromJulianDayNumber converts a Julian Day Number to a Hebrew date.
func FromJulianDayNumber(jdn int) (Date, error) {
	return FromDayNumber(jdn - jdnOffset - epochFixed + 1)
}

func (d Date) fixed() int {
	return d.DayNumber() + epochFixed - 1
}

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	return weekdayOfFixed(d.fixed())
}

// Next returns the following day, rolling month and year as needed.
func (d Date) Next() Date {
	if d.Day < DaysInMonth(d.Month, d.Year) {
		d.Day++
		return d
	}
	d.Day = 1
	switch d.Month {
	case Elul:
		d.Year++
		d.Month = Tishrei
	case Adar:
		if IsLeapYear(d.Year) {
			d.Month = AdarII
		} else {
			d.Month = Nissan
		}
	case AdarII:
		d.Month = Nissan
	default:
		d.Month = d.Month%12 + 1
	}
	return d
}

// Prev returns the preceding day. It fails only on 1 Tishrei of year 1.
func (d Date) Prev() (Date, error) {
	if d.Day > 1 {
		d.Day--
		return d, nil
	}
	switch d.Month {
	case Tishrei:
		if d.Year == 1 {
			return Date{}, fmt.Errorf("day before %s: %w", d, ErrOutOfDomain)
		}
		d.Year--
		d.Month = Elul
	case Nissan:
		d.Month = LastMonthOfYear(d.Year)
	default:
		d.Month--
	}
	d.Day = DaysInMonth(d.Month, d.Year)
	return d, nil
}

// AddDays returns the date n days away. Negative n steps backward.
func (d Date) AddDays(n int) (Date, error) {
	return FromDayNumber(d.DayNumber() + n)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month == o.Month:
		return sign(d.Day - o.Day)
	}
	return sign(monthOfYear(d.Year, d.Month) - monthOfYear(o.Year, o.Month))
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// String formats the date as "8 Teves 5784".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, d.Month, d.Year)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
