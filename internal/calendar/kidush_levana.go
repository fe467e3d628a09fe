package calendar

import "time"

// halfLunarMonth is 14d 18h 22m 1.666s, rounded to the millisecond.
const halfLunarMonth = 14*24*time.Hour + 18*time.Hour + 22*time.Minute + 1666*time.Millisecond

// KidushLevanaWindow holds the instants that bound Kiddush Levana for one
// month, all in UTC.
type KidushLevanaWindow struct {
	Start3Days       time.Time
	Start7Days       time.Time
	EndBetweenMoldos time.Time
	End15Days        time.Time
}

// KidushLevana derives the Kiddush Levana window from the molad instant.
// The zmanim layer intersects it with nightfall.
func (m Molad) KidushLevana() KidushLevanaWindow {
	at := m.Instant()
	return KidushLevanaWindow{
		Start3Days:       at.Add(72 * time.Hour),
		Start7Days:       at.Add(168 * time.Hour),
		EndBetweenMoldos: at.Add(halfLunarMonth),
		End15Days:        at.Add(15 * 24 * time.Hour),
	}
}
