package calendar

import (
	"fmt"
	"time"
)

// Molad arithmetic constants. A chelek is 1/1080 of an hour.
const (
	ChalakimPerMinute = 18
	ChalakimPerHour   = 1080
	ChalakimPerDay    = 24 * ChalakimPerHour // 25920

	// ChalakimPerMonth is the mean lunar month, 29d 12h 793ch.
	ChalakimPerMonth = 29*ChalakimPerDay + 12*ChalakimPerHour + 793 // 765433

	// moladTohu is the creation molad BaHaRaD (day 2, 5h, 204ch), measured
	// from the start of molad day 0.
	moladTohu = 1*ChalakimPerDay + 5*ChalakimPerHour + 204 // 31524

	// jewishEpoch is the R.D. number of the civil date whose evening
	// opens molad day 0.
	jewishEpoch = -1373429
)

// monthsPerCycle is the number of months in one 19-year cycle.
const monthsPerCycle = 235

// jerusalemMeanTime is local mean time at the Temple Mount (35.2354° E).
// Molad times are announced in this clock.
var jerusalemMeanTime = time.FixedZone("LMT+02:20:56", 2*3600+20*60+56)

// jerusalemOffset is the exact longitude offset, including the 0.496s
// that a whole-second FixedZone cannot represent.
const jerusalemOffset = 2*time.Hour + 20*time.Minute + 56*time.Second + 496*time.Millisecond

// Molad is the mean conjunction that opens a Hebrew month.
//
// Day counts molad days; day 1 is the Monday of creation, so
// Day%7 == 0 is a Sunday. Hours run from 18:00 of the preceding civil
// evening, the traditional start of the day.
type Molad struct {
	Total   int64   // chalakim since the start of molad day 0
	Day     int64   // molad day count
	Weekday Weekday // 1=Sunday .. 7=Shabbos
	Hours   int     // 0-23, counted from 18:00 the evening before
	Parts   int     // 0-1079 chalakim within the hour
}

func newMolad(total int64) Molad {
	day := total / ChalakimPerDay
	partsOfDay := int(total - day*ChalakimPerDay)
	return Molad{
		Total:   total,
		Day:     day,
		Weekday: Weekday(day%7 + 1),
		Hours:   partsOfDay / ChalakimPerHour,
		Parts:   partsOfDay % ChalakimPerHour,
	}
}

// Minutes returns the minutes of the announced molad time (Parts / 18).
func (m Molad) Minutes() int {
	return m.Parts / ChalakimPerMinute
}

// Chalakim returns the chalakim left over after Minutes (0-17).
func (m Molad) Chalakim() int {
	return m.Parts % ChalakimPerMinute
}

// Instant returns the molad as an absolute instant, computed in
// Jerusalem local mean time and reported in UTC.
func (m Molad) Instant() time.Time {
	return m.wallClock().Add(-jerusalemOffset)
}

// LocalTime returns the molad as wall clock time in Jerusalem local mean
// time, the form used when the molad is announced.
func (m Molad) LocalTime() time.Time {
	w := m.wallClock()
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), jerusalemMeanTime)
}

// wallClock is the Jerusalem wall time of the molad, labelled UTC.
func (m Molad) wallClock() time.Time {
	evening := fixedToTime(int(m.Day) + jewishEpoch)
	partsOfDay := m.Total - m.Day*ChalakimPerDay
	// 1 chelek = 10/3 seconds
	offset := time.Duration(partsOfDay * 1e10 / 3)
	return evening.Add(18*time.Hour + offset)
}

func (m Molad) String() string {
	return fmt.Sprintf("%s %dh %dm %dch", m.Weekday, m.Hours, m.Minutes(), m.Chalakim())
}

// monthsElapsed counts lunar months from creation to the start of the
// given month of the year.
func monthsElapsed(year int, m Month) int64 {
	r := int64(year - 1)
	cycles, pos := r/19, r%19
	return monthsPerCycle*cycles + 12*pos + (7*pos+1)/19 + int64(monthOfYear(year, m)-1)
}

// moladChalakim is the molad of month m in year, in chalakim since the
// start of molad day 0. The month must exist in the year.
func moladChalakim(year int, m Month) int64 {
	return moladTohu + ChalakimPerMonth*monthsElapsed(year, m)
}

// MoladOf returns the molad of the month m of the Hebrew year.
func MoladOf(year int, m Month) (Molad, error) {
	if year < 1 {
		return Molad{}, fmt.Errorf("molad of year %d: %w", year, ErrOutOfDomain)
	}
	if !MonthExists(m, year) {
		return Molad{}, &FieldError{Field: "month", Value: int(m), Reason: monthReason(m, year)}
	}
	return newMolad(moladChalakim(year, m)), nil
}

// MoladTishrei returns the molad of Tishrei, the molad that fixes the year.
func MoladTishrei(year int) Molad {
	return newMolad(moladChalakim(year, Tishrei))
}

// MoladChalakim returns the total chalakim from the creation epoch to the
// molad of Tishrei of year.
func MoladChalakim(year int) int64 {
	return moladChalakim(year, Tishrei)
}
