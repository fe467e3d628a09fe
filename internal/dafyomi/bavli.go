package dafyomi

import (
	"time"

	"github.com/zapponejosh/luach/internal/calendar"
)

const (
	// bavliStartJDN is 11 September 1923, Rosh Hashana 5684.
	bavliStartJDN = 2423674

	// shekalimChangeJDN is 24 June 1975. From this day Shekalim is
	// learned from the Vilna Shas with 22 pages instead of 13.
	shekalimChangeJDN = 2442588

	// Cycles 1-7 ran 2702 days; from cycle 8 on a cycle is 2711 days.
	oldCycleLength = 2702
	newCycleLength = 2711
	firstNewCycle  = 8

	shekalimIndex = 4
)

// bavliPages is the page count of each tractate. Shekalim is the
// post-1975 count.
var bavliPages = [...]int{
	64, 157, 105, 121, 22, 88, 56, 40, 35, 31, 32, 29, 27, 122, 112, 91, 66, 49, 90, 82,
	119, 119, 176, 113, 24, 49, 76, 14, 120, 110, 142, 61, 34, 34, 28, 22, 4, 9, 5, 73,
}

// Kinnim, Tamid and Midos are printed after Meilah without restarting
// the page count.
var bavliPageOffsets = map[int]int{
	36: 21,
	37: 24,
	38: 32,
}

// Cycle locates a day inside the Bavli cycle.
type Cycle struct {
	Number     int // 1-based cycle count since 1923
	DayInCycle int // 0-based
	Length     int // 2702 before 24 June 1975, 2711 after
}

// BavliCycle returns the cycle containing the civil date of t.
func BavliCycle(t time.Time) (Cycle, bool) {
	return bavliCycleOf(calendar.JulianDayNumberOf(t))
}

func bavliCycleOf(jdn int) (Cycle, bool) {
	switch {
	case jdn < bavliStartJDN:
		return Cycle{}, false
	case jdn >= shekalimChangeJDN:
		diff := jdn - shekalimChangeJDN
		return Cycle{
			Number:     firstNewCycle + diff/newCycleLength,
			DayInCycle: diff % newCycleLength,
			Length:     newCycleLength,
		}, true
	default:
		diff := jdn - bavliStartJDN
		return Cycle{
			Number:     1 + diff/oldCycleLength,
			DayInCycle: diff % oldCycleLength,
			Length:     oldCycleLength,
		}, true
	}
}

// BavliDaf returns the Bavli page learned on the civil date of t. The
// bool is false before the first cycle began on 11 September 1923.
func BavliDaf(t time.Time) (Daf, bool) {
	cycle, ok := BavliCycle(t)
	if !ok {
		return Daf{}, false
	}

	pages := bavliPages
	if cycle.Length == oldCycleLength {
		pages[shekalimIndex] = 13
	}

	// Every tractate starts on page 2.
	total := 0
	for i, count := range pages {
		total += count - 1
		if cycle.DayInCycle < total {
			page := 1 + count - (total - cycle.DayInCycle)
			return Daf{Talmud: Bavli, Masechta: i, Page: page + bavliPageOffsets[i]}, true
		}
	}
	return Daf{}, false
}
