package calendar

import "time"

// Day numbering anchors. R.D. 1 is 1 January 1 CE (proleptic Gregorian).
const (
	// epochFixed is the R.D. number of 1 Tishrei, year 1.
	epochFixed = -1373427

	// unixEpochFixed is the R.D. number of 1 January 1970.
	unixEpochFixed = 719163

	// jdnOffset converts an R.D. number to a Julian Day Number.
	jdnOffset = 1721425

	secondsPerDay = 24 * 60 * 60
)

// dateLayout is the civil date form accepted on input and emitted on output.
const dateLayout = "2006-01-02"

// fixedFromCivil returns the R.D. number of a proleptic Gregorian date.
// Years use astronomical numbering (year 0 is 1 BCE).
func fixedFromCivil(year int, month time.Month, day int) int {
	secs := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
	return int(floorDiv64(secs, secondsPerDay)) + unixEpochFixed
}

// fixedFromTime reads the civil year, month and day of t in its own
// location. No zone conversion happens here.
func fixedFromTime(t time.Time) int {
	y, m, d := t.Date()
	return fixedFromCivil(y, m, d)
}

// fixedToTime returns midnight UTC of an R.D. day.
func fixedToTime(fixed int) time.Time {
	return time.Unix(int64(fixed-unixEpochFixed)*secondsPerDay, 0).UTC()
}

// JulianDayNumber returns the Julian Day Number of a proleptic Gregorian
// date, the count of days since noon 1 January 4713 BCE (Julian).
func JulianDayNumber(year int, month time.Month, day int) int {
	return fixedFromCivil(year, month, day) + jdnOffset
}

// JulianDayNumberOf is JulianDayNumber for the civil date of t.
func JulianDayNumberOf(t time.Time) int {
	return fixedFromTime(t) + jdnOffset
}

// ParseDateString parses a date string in YYYY-MM-DD format.
func ParseDateString(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, dateStr)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(dateLayout)
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
