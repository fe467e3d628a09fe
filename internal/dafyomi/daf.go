// Package dafyomi computes the page of Talmud studied on a given day in
// the worldwide Daf Yomi cycles of the Babylonian and Jerusalem Talmud.
//
// Dates are civil dates already resolved to the caller's time zone. Days
// outside a cycle are reported with a false bool, never an error.
package dafyomi

import "fmt"

// Talmud selects which Talmud a Daf belongs to.
type Talmud int

const (
	Bavli Talmud = iota
	Yerushalmi
)

func (t Talmud) String() string {
	switch t {
	case Bavli:
		return "Bavli"
	case Yerushalmi:
		return "Yerushalmi"
	}
	return fmt.Sprintf("Talmud(%d)", int(t))
}

// Daf is one page of the cycle: a tractate index into the Talmud's
// tractate table and the printed page number.
type Daf struct {
	Talmud   Talmud
	Masechta int
	Page     int
}

// Name returns the transliterated tractate name.
func (d Daf) Name() string {
	names := bavliMasechtos[:]
	if d.Talmud == Yerushalmi {
		names = yerushalmiMasechtos[:]
	}
	if d.Masechta < 0 || d.Masechta >= len(names) {
		return ""
	}
	return names[d.Masechta]
}

func (d Daf) String() string {
	return fmt.Sprintf("%s %d", d.Name(), d.Page)
}

var bavliMasechtos = [...]string{
	"Berachos", "Shabbos", "Eruvin", "Pesachim", "Shekalim", "Yoma", "Sukkah", "Beitzah", "Rosh Hashana",
	"Taanis", "Megillah", "Moed Katan", "Chagigah", "Yevamos", "Kesubos", "Nedarim", "Nazir", "Sotah",
	"Gitin", "Kiddushin", "Bava Kamma", "Bava Metzia", "Bava Basra", "Sanhedrin", "Makkos", "Shevuos",
	"Avodah Zarah", "Horiyos", "Zevachim", "Menachos", "Chullin", "Bechoros", "Arachin", "Temurah",
	"Kerisos", "Meilah", "Kinnim", "Tamid", "Midos", "Niddah",
}

var yerushalmiMasechtos = [...]string{
	"Berachos", "Peah", "Demai", "Kilayim", "Sheviis", "Terumos", "Maasros", "Maaser Sheni", "Chalah",
	"Orlah", "Bikurim", "Shabbos", "Eruvin", "Pesachim", "Beitzah", "Rosh Hashanah", "Yoma", "Sukkah",
	"Taanis", "Shekalim", "Megilah", "Chagigah", "Moed Katan", "Yevamos", "Kesuvos", "Sotah", "Nedarim",
	"Nazir", "Gitin", "Kidushin", "Bava Kama", "Bava Metzia", "Bava Basra", "Shevuos", "Makos",
	"Sanhedrin", "Avodah Zarah", "Horayos", "Niddah",
}
