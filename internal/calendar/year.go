package calendar

import "fmt"

// Dechiyah thresholds, in chalakim into the molad day.
const (
	moladZakenParts = 18 * ChalakimPerHour     // 18h
	gatradParts     = 9*ChalakimPerHour + 204  // Tuesday 9h 204ch
	betutakpatParts = 15*ChalakimPerHour + 589 // Monday 15h 589ch
)

// Kviah is the length category of a year, fixed by the lengths of
// Cheshvan and Kislev.
type Kviah int

// Year length categories.
const (
	Chaserim  Kviah = iota // Cheshvan 29, Kislev 29 (353/383 days)
	Kesidran               // Cheshvan 29, Kislev 30 (354/384 days)
	Shelaimim              // Cheshvan 30, Kislev 30 (355/385 days)
)

func (k Kviah) String() string {
	switch k {
	case Chaserim:
		return "Chaserim"
	case Kesidran:
		return "Kesidran"
	case Shelaimim:
		return "Shelaimim"
	}
	return fmt.Sprintf("Kviah(%d)", int(k))
}

// IsLeapYear reports whether the Hebrew year has thirteen months.
func IsLeapYear(year int) bool {
	return floorMod(7*year+1, 19) < 7
}

// CyclePosition locates a year inside its 19-year cycle.
type CyclePosition struct {
	Position int  // 1-19
	Leap     bool // true at positions 3, 6, 8, 11, 14, 17 and 19
}

// CyclePositionOf returns the cycle position of a Hebrew year.
func CyclePositionOf(year int) CyclePosition {
	pos := floorMod(year-1, 19) + 1
	return CyclePosition{Position: pos, Leap: IsLeapYear(year)}
}

// ElapsedDays returns the number of days from the start of molad day 0 to
// Rosh Hashana of year, after the four dechiyos. Day 1 is 1 Tishrei of
// year 1, and ElapsedDays%7 == 0 is a Sunday.
func ElapsedDays(year int) int {
	chalakim := moladChalakim(year, Tishrei)
	day := chalakim / ChalakimPerDay
	parts := chalakim - day*ChalakimPerDay
	dow := day % 7

	rh := day
	switch {
	case parts >= moladZakenParts:
		rh++
	case dow == 2 && parts >= gatradParts && !IsLeapYear(year):
		rh++
	case dow == 1 && parts >= betutakpatParts && IsLeapYear(year-1):
		rh++
	}

	// Lo ADU Rosh: never Sunday, Wednesday or Friday.
	switch rh % 7 {
	case 0, 3, 5:
		rh++
	}
	return int(rh)
}

// DaysInYear returns the number of days in the Hebrew year.
func DaysInYear(year int) int {
	return ElapsedDays(year+1) - ElapsedDays(year)
}

// YearInfo is the resolved shape of a Hebrew year.
type YearInfo struct {
	Year         int
	Leap         bool
	Days         int // 353-355 or 383-385
	CheshvanDays int
	KislevDays   int
	Kviah        Kviah
	RoshHashana  Weekday
}

// ResolveYear computes leap status, length and Rosh Hashana weekday.
func ResolveYear(year int) YearInfo {
	elapsed := ElapsedDays(year)
	days := ElapsedDays(year+1) - elapsed

	info := YearInfo{
		Year:         year,
		Leap:         IsLeapYear(year),
		Days:         days,
		CheshvanDays: 29,
		KislevDays:   30,
		Kviah:        Kesidran,
		RoshHashana:  Weekday(elapsed%7 + 1),
	}
	switch days % 10 {
	case 3:
		info.Kviah = Chaserim
		info.KislevDays = 29
	case 5:
		info.Kviah = Shelaimim
		info.CheshvanDays = 30
	}
	return info
}

// MonthDays returns the length of month m in this year, or 0 if the
// month does not occur.
func (y YearInfo) MonthDays(m Month) int {
	switch m {
	case Iyar, Tammuz, Elul, Teves:
		return 29
	case AdarII:
		if y.Leap {
			return 29
		}
		return 0
	case Adar:
		if y.Leap {
			return 30
		}
		return 29
	case Cheshvan:
		return y.CheshvanDays
	case Kislev:
		return y.KislevDays
	case Tishrei, Shevat, Nissan, Sivan, Av:
		return 30
	}
	return 0
}

// IsCheshvanLong reports whether Cheshvan has 30 days.
func IsCheshvanLong(year int) bool {
	return DaysInYear(year)%10 == 5
}

// IsKislevShort reports whether Kislev has 29 days.
func IsKislevShort(year int) bool {
	return DaysInYear(year)%10 == 3
}

// DaysInMonth returns the length of month m in year, or 0 if the month
// does not occur in that year.
func DaysInMonth(m Month, year int) int {
	switch m {
	case Cheshvan, Kislev:
		return ResolveYear(year).MonthDays(m)
	case Adar, AdarII:
		return YearInfo{Leap: IsLeapYear(year)}.MonthDays(m)
	}
	return YearInfo{}.MonthDays(m)
}

// MonthsInYear returns 13 in a leap year and 12 otherwise.
func MonthsInYear(year int) int {
	if IsLeapYear(year) {
		return 13
	}
	return 12
}

// LastMonthOfYear returns the final month of the year counted from
// Nissan: AdarII in a leap year, Adar otherwise.
func LastMonthOfYear(year int) Month {
	if IsLeapYear(year) {
		return AdarII
	}
	return Adar
}
