package calendar

import "fmt"

// YomTov identifies a festival, fast or commemorative day.
type YomTov int

// Festivals, fasts and commemorative days.
const (
	ErevPesach YomTov = iota
	Pesach
	CholHamoedPesach
	PesachSheni
	ErevShavuos
	Shavuos
	SeventeenthOfTammuz
	TishaBeav
	TuBeav
	ErevRoshHashana
	RoshHashana
	FastOfGedalyah
	ErevYomKippur
	YomKippur
	ErevSuccos
	Succos
	CholHamoedSuccos
	HoshanaRabba
	SheminiAtzeres
	SimchasTorah
	Chanukah
	TenthOfTeves
	TuBeshvat
	FastOfEsther
	Purim
	ShushanPurim
	PurimKatan
	ShushanPurimKatan
	YomHashoah
	YomHazikaron
	YomHaatzmaut
	YomYerushalayim
	LagBaomer
	IsruChag
)

var yomTovNames = [...]string{
	ErevPesach:          "Erev Pesach",
	Pesach:              "Pesach",
	CholHamoedPesach:    "Chol Hamoed Pesach",
	PesachSheni:         "Pesach Sheni",
	ErevShavuos:         "Erev Shavuos",
	Shavuos:             "Shavuos",
	SeventeenthOfTammuz: "Seventeenth of Tammuz",
	TishaBeav:           "Tisha B'Av",
	TuBeav:              "Tu B'Av",
	ErevRoshHashana:     "Erev Rosh Hashana",
	RoshHashana:         "Rosh Hashana",
	FastOfGedalyah:      "Fast of Gedalyah",
	ErevYomKippur:       "Erev Yom Kippur",
	YomKippur:           "Yom Kippur",
	ErevSuccos:          "Erev Succos",
	Succos:              "Succos",
	CholHamoedSuccos:    "Chol Hamoed Succos",
	HoshanaRabba:        "Hoshana Rabba",
	SheminiAtzeres:      "Shemini Atzeres",
	SimchasTorah:        "Simchas Torah",
	Chanukah:            "Chanukah",
	TenthOfTeves:        "Tenth of Teves",
	TuBeshvat:           "Tu B'Shvat",
	FastOfEsther:        "Fast of Esther",
	Purim:               "Purim",
	ShushanPurim:        "Shushan Purim",
	PurimKatan:          "Purim Katan",
	ShushanPurimKatan:   "Shushan Purim Katan",
	YomHashoah:          "Yom HaShoah",
	YomHazikaron:        "Yom HaZikaron",
	YomHaatzmaut:        "Yom Ha'atzmaut",
	YomYerushalayim:     "Yom Yerushalayim",
	LagBaomer:           "Lag BaOmer",
	IsruChag:            "Isru Chag",
}

func (y YomTov) String() string {
	if y < ErevPesach || y > IsruChag {
		return fmt.Sprintf("YomTov(%d)", int(y))
	}
	return yomTovNames[y]
}

// Options select the customs that change holiday and parsha results.
type Options struct {
	// InIsrael applies the one-day festival schedule of Eretz Yisrael.
	InIsrael bool

	// UseModernHolidays includes Yom HaShoah, Yom HaZikaron,
	// Yom Ha'atzmaut and Yom Yerushalayim.
	UseModernHolidays bool
}

// HolidayOf returns the festival or fast falling on d. The bool is false
// on ordinary days, including days that are only Rosh Chodesh.
func HolidayOf(d Date, opts Options) (YomTov, bool) {
	day := d.Day
	dow := d.Weekday()
	diaspora := !opts.InIsrael

	switch d.Month {
	case Nissan:
		switch {
		case day == 14:
			return ErevPesach, true
		case day == 15 || day == 21 || (diaspora && (day == 16 || day == 22)):
			return Pesach, true
		case day >= 17 && day <= 20, day == 16 && opts.InIsrael:
			return CholHamoedPesach, true
		case (day == 22 && opts.InIsrael) || (day == 23 && diaspora):
			return IsruChag, true
		}
		if opts.UseModernHolidays &&
			((day == 26 && dow == Thursday) || (day == 28 && dow == Monday) ||
				(day == 27 && dow != Sunday && dow != Friday)) {
			return YomHashoah, true
		}

	case Iyar:
		if opts.UseModernHolidays {
			switch {
			case (day == 4 && dow == Tuesday) || ((day == 3 || day == 2) && dow == Wednesday) ||
				(day == 5 && dow == Monday):
				return YomHazikaron, true
			case (day == 5 && dow == Wednesday) || ((day == 4 || day == 3) && dow == Thursday) ||
				(day == 6 && dow == Tuesday):
				return YomHaatzmaut, true
			case day == 28:
				return YomYerushalayim, true
			}
		}
		switch day {
		case 14:
			return PesachSheni, true
		case 18:
			return LagBaomer, true
		}

	case Sivan:
		switch {
		case day == 5:
			return ErevShavuos, true
		case day == 6 || (day == 7 && diaspora):
			return Shavuos, true
		case (day == 7 && opts.InIsrael) || (day == 8 && diaspora):
			return IsruChag, true
		}

	case Tammuz:
		// The fast moves to Sunday when the 17th is Shabbos.
		if (day == 17 && dow != Shabbos) || (day == 18 && dow == Sunday) {
			return SeventeenthOfTammuz, true
		}

	case Av:
		if (day == 9 && dow != Shabbos) || (day == 10 && dow == Sunday) {
			return TishaBeav, true
		}
		if day == 15 {
			return TuBeav, true
		}

	case Elul:
		if day == 29 {
			return ErevRoshHashana, true
		}

	case Tishrei:
		switch {
		case day == 1 || day == 2:
			return RoshHashana, true
		case (day == 3 && dow != Shabbos) || (day == 4 && dow == Sunday):
			return FastOfGedalyah, true
		case day == 9:
			return ErevYomKippur, true
		case day == 10:
			return YomKippur, true
		case day == 14:
			return ErevSuccos, true
		case day == 15 || (day == 16 && diaspora):
			return Succos, true
		case day >= 16 && day <= 20:
			return CholHamoedSuccos, true
		case day == 21:
			return HoshanaRabba, true
		case day == 22:
			return SheminiAtzeres, true
		case day == 23 && diaspora:
			return SimchasTorah, true
		case day == 23:
			return IsruChag, true
		case day == 24 && diaspora:
			return IsruChag, true
		}

	case Kislev:
		if day >= 25 {
			return Chanukah, true
		}

	case Teves:
		if day == 1 || day == 2 || (day == 3 && IsKislevShort(d.Year)) {
			return Chanukah, true
		}
		if day == 10 {
			return TenthOfTeves, true
		}

	case Shevat:
		if day == 15 {
			return TuBeshvat, true
		}

	case Adar:
		if IsLeapYear(d.Year) {
			switch day {
			case 14:
				return PurimKatan, true
			case 15:
				return ShushanPurimKatan, true
			}
			break
		}
		return purimSeason(day, dow)

	case AdarII:
		return purimSeason(day, dow)
	}
	return 0, false
}

// purimSeason covers the Adar that precedes Nissan.
func purimSeason(day int, dow Weekday) (YomTov, bool) {
	switch {
	case ((day == 11 || day == 12) && dow == Thursday) ||
		(day == 13 && dow != Friday && dow != Shabbos):
		return FastOfEsther, true
	case day == 14:
		return Purim, true
	case day == 15:
		return ShushanPurim, true
	}
	return 0, false
}

// DayOfChanukah returns 1-8 during Chanukah.
func DayOfChanukah(d Date) (int, bool) {
	switch {
	case d.Month == Kislev && d.Day >= 25:
		return d.Day - 24, true
	case d.Month == Teves:
		n := d.Day + 6
		if IsKislevShort(d.Year) {
			n = d.Day + 5
		}
		if n <= 8 {
			return n, true
		}
	}
	return 0, false
}

// IsRoshChodesh reports whether d is Rosh Chodesh. 1 Tishrei is Rosh
// Hashana and never counts.
func IsRoshChodesh(d Date) bool {
	return (d.Day == 1 && d.Month != Tishrei) || d.Day == 30
}

// IsErevRoshChodesh reports whether the next day is Rosh Chodesh. Erev
// Rosh Hashana is excluded.
func IsErevRoshChodesh(d Date) bool {
	return d.Day == 29 && d.Month != Elul
}

// IsTaanis reports whether d is a public fast day.
func IsTaanis(d Date, opts Options) bool {
	y, ok := HolidayOf(d, opts)
	if !ok {
		return false
	}
	switch y {
	case SeventeenthOfTammuz, TishaBeav, YomKippur, FastOfGedalyah, TenthOfTeves, FastOfEsther:
		return true
	}
	return false
}

// IsYomTovAssurBemelacha reports whether work is forbidden on d because
// of a festival (Shabbos itself is not considered).
func IsYomTovAssurBemelacha(d Date, opts Options) bool {
	y, ok := HolidayOf(d, opts)
	if !ok {
		return false
	}
	switch y {
	case Pesach, Shavuos, Succos, SheminiAtzeres, SimchasTorah, RoshHashana, YomKippur:
		return true
	}
	return false
}

// IsCholHamoed reports whether d is an intermediate festival day.
func IsCholHamoed(d Date, opts Options) bool {
	y, ok := HolidayOf(d, opts)
	return ok && (y == CholHamoedPesach || y == CholHamoedSuccos)
}
