// Package calendar provides Hebrew calendar calculations: the molad,
// year length and leap status, Hebrew/Gregorian conversion, and the
// holidays and Torah readings derived from a resolved date.
//
// Everything here is exact integer arithmetic over values. Calendar is a
// small mutable cursor on top of Date for callers that step through days.
package calendar

import "time"

// Calendar is a cursor over one Hebrew date. It is not safe for
// concurrent use; give each goroutine its own Calendar.
type Calendar struct {
	Options
	date Date
}

// New returns a Calendar positioned at the civil date of t.
func New(t time.Time) (*Calendar, error) {
	c := &Calendar{}
	if err := c.SetGregorianDate(t); err != nil {
		return nil, err
	}
	return c, nil
}

// NewHebrew returns a Calendar positioned at the given Hebrew date.
func NewHebrew(year int, month Month, day int) (*Calendar, error) {
	c := &Calendar{}
	if err := c.SetJewishDate(year, month, day); err != nil {
		return nil, err
	}
	return c, nil
}

// SetGregorianDate moves the cursor to the civil date of t. On error the
// cursor is unchanged.
func (c *Calendar) SetGregorianDate(t time.Time) error {
	d, err := FromGregorian(t)
	if err != nil {
		return err
	}
	c.date = d
	return nil
}

// SetJewishDate moves the cursor to a Hebrew date. On error the cursor is
// unchanged.
func (c *Calendar) SetJewishDate(year int, month Month, day int) error {
	d, err := NewDate(year, month, day)
	if err != nil {
		return err
	}
	c.date = d
	return nil
}

// SetDate moves the cursor to an already validated date.
func (c *Calendar) SetDate(d Date) {
	c.date = d
}

// Forward advances one day.
func (c *Calendar) Forward() {
	c.date = c.date.Next()
}

// Back moves one day earlier. It fails on 1 Tishrei of year 1.
func (c *Calendar) Back() error {
	d, err := c.date.Prev()
	if err != nil {
		return err
	}
	c.date = d
	return nil
}

// Date returns the current Hebrew date.
func (c *Calendar) Date() Date { return c.date }

// Gregorian returns the current civil date as midnight UTC.
func (c *Calendar) Gregorian() time.Time { return c.date.Gregorian() }

func (c *Calendar) JewishYear() int       { return c.date.Year }
func (c *Calendar) JewishMonth() Month    { return c.date.Month }
func (c *Calendar) JewishDayOfMonth() int { return c.date.Day }
func (c *Calendar) DayOfWeek() Weekday    { return c.date.Weekday() }

// IsJewishLeapYear reports whether the current year has Adar II.
func (c *Calendar) IsJewishLeapYear() bool {
	return IsLeapYear(c.date.Year)
}

// CheshvanKislevKviah returns the length category of the current year.
func (c *Calendar) CheshvanKislevKviah() Kviah {
	return ResolveYear(c.date.Year).Kviah
}

// DaysInJewishYear returns the length of the current year.
func (c *Calendar) DaysInJewishYear() int {
	return DaysInYear(c.date.Year)
}

// DaysInJewishMonth returns the length of the current month.
func (c *Calendar) DaysInJewishMonth() int {
	return DaysInMonth(c.date.Month, c.date.Year)
}

// DaysSinceStartOfJewishYear returns the 1-based day of the year.
func (c *Calendar) DaysSinceStartOfJewishYear() int {
	return c.date.DayOfYear()
}

// Molad returns the molad of the current month.
func (c *Calendar) Molad() Molad {
	return newMolad(moladChalakim(c.date.Year, c.date.Month))
}

// YomTov returns the festival or fast of the current day, if any.
func (c *Calendar) YomTov() (YomTov, bool) {
	return HolidayOf(c.date, c.Options)
}

// DayOfChanukah returns 1-8 during Chanukah.
func (c *Calendar) DayOfChanukah() (int, bool) {
	return DayOfChanukah(c.date)
}

func (c *Calendar) IsChanukah() bool {
	_, ok := DayOfChanukah(c.date)
	return ok
}

func (c *Calendar) IsRoshChodesh() bool          { return IsRoshChodesh(c.date) }
func (c *Calendar) IsErevRoshChodesh() bool      { return IsErevRoshChodesh(c.date) }
func (c *Calendar) IsTaanis() bool               { return IsTaanis(c.date, c.Options) }
func (c *Calendar) IsYomTovAssurBemelacha() bool { return IsYomTovAssurBemelacha(c.date, c.Options) }
func (c *Calendar) IsCholHamoed() bool           { return IsCholHamoed(c.date, c.Options) }

// Parshah returns the weekly portion read today, or NoParsha.
func (c *Calendar) Parshah() Parsha {
	return ParshaOf(c.date, c.InIsrael)
}

// UpcomingParshah returns the next weekly portion to be read after today.
func (c *Calendar) UpcomingParshah() Parsha {
	return UpcomingParshaOf(c.date, c.InIsrael)
}

// SpecialShabbos returns today's special reading, or NoParsha.
func (c *Calendar) SpecialShabbos() Parsha {
	return SpecialShabbosOf(c.date, c.InIsrael)
}

// TchilasZmanKidushLevana3Days is the earliest time for Kiddush Levana
// by the three day opinion.
func (c *Calendar) TchilasZmanKidushLevana3Days() time.Time {
	return c.Molad().KidushLevana().Start3Days
}

// TchilasZmanKidushLevana7Days is the earliest time for Kiddush Levana
// by the seven day opinion.
func (c *Calendar) TchilasZmanKidushLevana7Days() time.Time {
	return c.Molad().KidushLevana().Start7Days
}

// SofZmanKidushLevanaBetweenMoldos is halfway to the next molad.
func (c *Calendar) SofZmanKidushLevanaBetweenMoldos() time.Time {
	return c.Molad().KidushLevana().EndBetweenMoldos
}

// SofZmanKidushLevana15Days is fifteen days after the molad.
func (c *Calendar) SofZmanKidushLevana15Days() time.Time {
	return c.Molad().KidushLevana().End15Days
}
