package calendar

import (
	"fmt"
	"sync"
)

// Parsha is a weekly Torah portion, a pair of portions read together, or
// one of the special Shabbos readings.
type Parsha int

// Weekly portions in reading order.
const (
	NoParsha Parsha = iota
	Bereshis
	Noach
	LechLecha
	Vayera
	ChayeiSara
	Toldos
	Vayetzei
	Vayishlach
	Vayeshev
	Miketz
	Vayigash
	Vayechi
	Shemos
	Vaera
	Bo
	Beshalach
	Yisro
	Mishpatim
	Terumah
	Tetzaveh
	KiSisa
	Vayakhel
	Pekudei
	Vayikra
	Tzav
	Shmini
	Tazria
	Metzora
	AchreiMos
	Kedoshim
	Emor
	Behar
	Bechukosai
	Bamidbar
	Nasso
	Behaaloscha
	Shlach
	Korach
	Chukas
	Balak
	Pinchas
	Matos
	Masei
	Devarim
	Vaeschanan
	Eikev
	Reeh
	Shoftim
	KiSeitzei
	KiSavo
	Nitzavim
	Vayeilech
	Haazinu
	VzosHaberacha

	// Portions combined in shorter years.
	VayakhelPekudei
	TazriaMetzora
	AchreiMosKedoshim
	BeharBechukosai
	ChukasBalak
	MatosMasei
	NitzavimVayeilech

	// Special Shabbos readings.
	Shkalim
	Zachor
	Para
	Hachodesh
	Shuva
	Shira
	Hagadol
	Chazon
	Nachamu
)

var parshaNames = [...]string{
	NoParsha:          "",
	Bereshis:          "Bereshis",
	Noach:             "Noach",
	LechLecha:         "Lech Lecha",
	Vayera:            "Vayera",
	ChayeiSara:        "Chayei Sara",
	Toldos:            "Toldos",
	Vayetzei:          "Vayetzei",
	Vayishlach:        "Vayishlach",
	Vayeshev:          "Vayeshev",
	Miketz:            "Miketz",
	Vayigash:          "Vayigash",
	Vayechi:           "Vayechi",
	Shemos:            "Shemos",
	Vaera:             "Vaera",
	Bo:                "Bo",
	Beshalach:         "Beshalach",
	Yisro:             "Yisro",
	Mishpatim:         "Mishpatim",
	Terumah:           "Terumah",
	Tetzaveh:          "Tetzaveh",
	KiSisa:            "Ki Sisa",
	Vayakhel:          "Vayakhel",
	Pekudei:           "Pekudei",
	Vayikra:           "Vayikra",
	Tzav:              "Tzav",
	Shmini:            "Shmini",
	Tazria:            "Tazria",
	Metzora:           "Metzora",
	AchreiMos:         "Achrei Mos",
	Kedoshim:          "Kedoshim",
	Emor:              "Emor",
	Behar:             "Behar",
	Bechukosai:        "Bechukosai",
	Bamidbar:          "Bamidbar",
	Nasso:             "Nasso",
	Behaaloscha:       "Beha'aloscha",
	Shlach:            "Sh'lach",
	Korach:            "Korach",
	Chukas:            "Chukas",
	Balak:             "Balak",
	Pinchas:           "Pinchas",
	Matos:             "Matos",
	Masei:             "Masei",
	Devarim:           "Devarim",
	Vaeschanan:        "Vaeschanan",
	Eikev:             "Eikev",
	Reeh:              "Re'eh",
	Shoftim:           "Shoftim",
	KiSeitzei:         "Ki Seitzei",
	KiSavo:            "Ki Savo",
	Nitzavim:          "Nitzavim",
	Vayeilech:         "Vayeilech",
	Haazinu:           "Ha'Azinu",
	VzosHaberacha:     "Vezos Habracha",
	VayakhelPekudei:   "Vayakhel Pekudei",
	TazriaMetzora:     "Tazria Metzora",
	AchreiMosKedoshim: "Achrei Mos Kedoshim",
	BeharBechukosai:   "Behar Bechukosai",
	ChukasBalak:       "Chukas Balak",
	MatosMasei:        "Matos Masei",
	NitzavimVayeilech: "Nitzavim Vayeilech",
	Shkalim:           "Shekalim",
	Zachor:            "Zachor",
	Para:              "Parah",
	Hachodesh:         "Hachodesh",
	Shuva:             "Shuva",
	Shira:             "Shira",
	Hagadol:           "Hagadol",
	Chazon:            "Chazon",
	Nachamu:           "Nachamu",
}

func (p Parsha) String() string {
	if p < NoParsha || p > Nachamu {
		return fmt.Sprintf("Parsha(%d)", int(p))
	}
	return parshaNames[p]
}

// joinedWith maps the first portion of each combinable pair to the pair.
var joinedWith = map[Parsha]Parsha{
	Vayakhel:  VayakhelPekudei,
	Tazria:    TazriaMetzora,
	AchreiMos: AchreiMosKedoshim,
	Behar:     BeharBechukosai,
	Chukas:    ChukasBalak,
	Matos:     MatosMasei,
	Nitzavim:  NitzavimVayeilech,
}

// yearType is everything the weekly reading schedule depends on.
type yearType struct {
	roshHashana Weekday
	kviah       Kviah
	leap        bool
	inIsrael    bool
}

// schedules caches one reading table per yearType. There are at most
// 14 year types, doubled for Israel.
var schedules sync.Map

// ParshaOf returns the weekly portion read on d, or NoParsha when d is not
// Shabbos or when a festival reading replaces the weekly one.
func ParshaOf(d Date, inIsrael bool) Parsha {
	if d.Weekday() != Shabbos {
		return NoParsha
	}
	info := ResolveYear(d.Year)
	table := scheduleFor(info, inIsrael)
	return table[(dayOfYear(info, d.Month, d.Day)-firstShabbos(info))/7]
}

// UpcomingParshaOf returns the portion of the next Shabbos after d that
// has one, skipping festival Shabbosos.
func UpcomingParshaOf(d Date, inIsrael bool) Parsha {
	n := d.DayNumber()
	if w := d.Weekday(); w == Shabbos {
		n += 7
	} else {
		n += int(Shabbos - w)
	}
	for {
		if p := ParshaOf(fromDayNumber(n), inIsrael); p != NoParsha {
			return p
		}
		n += 7
	}
}

// SpecialShabbosOf returns the special reading for d, or NoParsha.
func SpecialShabbosOf(d Date, inIsrael bool) Parsha {
	if d.Weekday() != Shabbos {
		return NoParsha
	}
	day := d.Day

	// Shkalim falls on the Shabbos on or before Rosh Chodesh of the Adar
	// that precedes Nissan.
	shkalimMonth, purimMonth := Shevat, Adar
	if IsLeapYear(d.Year) {
		shkalimMonth, purimMonth = Adar, AdarII
	}

	switch d.Month {
	case shkalimMonth:
		if day == 25 || day == 27 || day == 29 {
			return Shkalim
		}
	case purimMonth:
		switch day {
		case 1:
			return Shkalim
		case 8, 9, 11, 13:
			return Zachor
		case 18, 20, 22, 23:
			return Para
		case 25, 27, 29:
			return Hachodesh
		}
	case Nissan:
		if day == 1 {
			return Hachodesh
		}
		if day >= 8 && day <= 14 {
			return Hagadol
		}
	case Av:
		if day >= 4 && day <= 9 {
			return Chazon
		}
		if day >= 10 && day <= 16 {
			return Nachamu
		}
	case Tishrei:
		if day >= 3 && day <= 8 {
			return Shuva
		}
	}

	if ParshaOf(d, inIsrael) == Beshalach {
		return Shira
	}
	return NoParsha
}

// firstShabbos is the day of year of the first Shabbos on or after
// Rosh Hashana.
func firstShabbos(info YearInfo) int {
	return 1 + int(Shabbos-info.RoshHashana)
}

func scheduleFor(info YearInfo, inIsrael bool) []Parsha {
	key := yearType{roshHashana: info.RoshHashana, kviah: info.Kviah, leap: info.Leap, inIsrael: inIsrael}
	if v, ok := schedules.Load(key); ok {
		return v.([]Parsha)
	}
	v, _ := schedules.LoadOrStore(key, buildSchedule(info, inIsrael))
	return v.([]Parsha)
}

// readingSegment is a run of Shabbosos between two anchors together with
// the portions read in it. joins lists the combinable pairs in the order
// they are combined.
type readingSegment struct {
	slots    []int
	portions []Parsha
	joins    []Parsha
}

// buildSchedule lays out the portion read on every Shabbos of a year.
//
// Festival Shabbosos read nothing. The rest are split at four anchors:
// Pesach (regular years only), Shavuos, 9 Av and the end of the year.
// Each segment reads a fixed range of portions and combines pairs until
// the portions fit its Shabbosos. Leftover portions carry into the next
// segment and a short segment borrows from the next one.
func buildSchedule(info YearInfo, inIsrael bool) []Parsha {
	first := firstShabbos(info)
	count := (info.Days-first)/7 + 1
	table := make([]Parsha, count)

	doy := func(m Month, day int) int { return dayOfYear(info, m, day) }
	festival := festivalDays(info, inIsrael)

	shabbos := func(k int) int { return first + 7*k }
	slotsBetween := func(after, before int) []int {
		var slots []int
		for k := 0; k < count; k++ {
			if d := shabbos(k); d > after && d < before && !festival[d] {
				slots = append(slots, k)
			}
		}
		return slots
	}

	// Between Rosh Hashana and Succos: Vayeilech and Ha'azinu, or Ha'azinu
	// alone when only one Shabbos is free.
	pre := slotsBetween(0, doy(Tishrei, 15))
	preReadings := []Parsha{Haazinu}
	if len(pre) == 2 {
		preReadings = []Parsha{Vayeilech, Haazinu}
	}
	for i, k := range pre {
		if i < len(preReadings) {
			table[k] = preReadings[i]
		}
	}

	simchasTorah := doy(Tishrei, 23)
	if inIsrael {
		simchasTorah = doy(Tishrei, 22)
	}
	pesach := doy(Nissan, 15)
	shavuos := doy(Sivan, 6)
	tishaBeav := doy(Av, 9)

	// Nitzavim and Vayeilech are read together unless Rosh Hashana of the
	// next year falls on Monday or Tuesday, leaving a Shabbos for
	// Vayeilech before Succos.
	closing := portionRange(Vaeschanan, KiSavo)
	nextRoshHashana := (int(info.RoshHashana) - 1 + info.Days) % 7
	if nextRoshHashana == 4 || nextRoshHashana == 6 {
		closing = append(closing, NitzavimVayeilech)
	} else {
		closing = append(closing, Nitzavim)
	}

	var segments []readingSegment
	if info.Leap {
		segments = append(segments, readingSegment{
			slots:    slotsBetween(simchasTorah, shavuos),
			portions: portionRange(Bereshis, Bamidbar),
			joins:    []Parsha{Vayakhel, Tazria, AchreiMos, Behar},
		})
	} else {
		segments = append(segments,
			readingSegment{
				slots:    slotsBetween(simchasTorah, pesach),
				portions: portionRange(Bereshis, Tzav),
				joins:    []Parsha{Vayakhel},
			},
			readingSegment{
				slots:    slotsBetween(pesach-1, shavuos),
				portions: portionRange(Shmini, Bamidbar),
				joins:    []Parsha{Tazria, AchreiMos, Behar},
			})
	}
	segments = append(segments,
		readingSegment{
			slots:    slotsBetween(shavuos-1, tishaBeav+1),
			portions: portionRange(Nasso, Devarim),
			joins:    []Parsha{Matos, Chukas},
		},
		readingSegment{
			slots:    slotsBetween(tishaBeav, info.Days+1),
			portions: closing,
		})

	var carry []Parsha
	for i := range segments {
		seg := &segments[i]
		portions := append(append([]Parsha(nil), carry...), seg.portions...)
		carry = nil

		for len(portions) < len(seg.slots) && i+1 < len(segments) && len(segments[i+1].portions) > 0 {
			next := &segments[i+1]
			portions = append(portions, next.portions[0])
			next.portions = next.portions[1:]
		}

		excess := len(portions) - len(seg.slots)
		for _, p := range seg.joins {
			if excess <= 0 {
				break
			}
			if j := indexOfPair(portions, p); j >= 0 {
				portions[j] = joinedWith[p]
				portions = append(portions[:j+1], portions[j+2:]...)
				excess--
			}
		}

		if len(portions) > len(seg.slots) {
			carry = portions[len(seg.slots):]
			portions = portions[:len(seg.slots)]
		}
		for k, slot := range seg.slots {
			if k < len(portions) {
				table[slot] = portions[k]
			}
		}
	}
	return table
}

// festivalDays marks the days of the year whose Shabbos reading is a
// festival reading.
func festivalDays(info YearInfo, inIsrael bool) map[int]bool {
	days := make(map[int]bool)
	mark := func(m Month, from, to int) {
		for d := from; d <= to; d++ {
			days[dayOfYear(info, m, d)] = true
		}
	}
	mark(Tishrei, 1, 2)
	mark(Tishrei, 10, 10)
	mark(Nissan, 15, 21)
	mark(Sivan, 6, 6)
	if inIsrael {
		mark(Tishrei, 15, 22)
	} else {
		mark(Tishrei, 15, 23)
		mark(Nissan, 22, 22)
		mark(Sivan, 7, 7)
	}
	return days
}

func portionRange(from, to Parsha) []Parsha {
	out := make([]Parsha, 0, to-from+1)
	for p := from; p <= to; p++ {
		out = append(out, p)
	}
	return out
}

// indexOfPair finds p immediately followed by its partner.
func indexOfPair(portions []Parsha, p Parsha) int {
	for j := 0; j+1 < len(portions); j++ {
		if portions[j] == p && portions[j+1] == p+1 {
			return j
		}
	}
	return -1
}
