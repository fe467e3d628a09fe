package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// civil converts a Gregorian date to Hebrew, failing the test on error.
func civil(t *testing.T, year int, month time.Month, day int) Date {
	t.Helper()
	d, err := FromGregorian(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return d
}

func TestHolidayOf(t *testing.T) {
	diaspora := Options{}
	israel := Options{InIsrael: true}
	modern := Options{InIsrael: true, UseModernHolidays: true}

	tests := []struct {
		name string
		date Date
		opts Options
		want YomTov
		ok   bool
	}{
		{"Rosh Hashana", Date{5784, Tishrei, 1}, diaspora, RoshHashana, true},
		{"Fast of Gedalyah moved to Sunday", civil(t, 2024, time.October, 6), diaspora, FastOfGedalyah, true},
		{"Yom Kippur", civil(t, 2023, time.September, 25), diaspora, YomKippur, true},
		{"second day Succos", Date{5784, Tishrei, 16}, diaspora, Succos, true},
		{"second day Succos in Israel", Date{5784, Tishrei, 16}, israel, CholHamoedSuccos, true},
		{"Hoshana Rabba", Date{5784, Tishrei, 21}, diaspora, HoshanaRabba, true},
		{"Simchas Torah", Date{5784, Tishrei, 23}, diaspora, SimchasTorah, true},
		{"Isru Chag in Israel", Date{5784, Tishrei, 23}, israel, IsruChag, true},
		{"Isru Chag Succos", Date{5784, Tishrei, 24}, diaspora, IsruChag, true},
		{"24 Tishrei in Israel", Date{5784, Tishrei, 24}, israel, 0, false},
		{"first day Chanukah", civil(t, 2023, time.December, 8), diaspora, Chanukah, true},
		{"Tenth of Teves", Date{5784, Teves, 10}, diaspora, TenthOfTeves, true},
		{"Tu B'Shvat", Date{5784, Shevat, 15}, diaspora, TuBeshvat, true},
		{"Purim Katan", Date{5784, Adar, 14}, diaspora, PurimKatan, true},
		{"Shushan Purim Katan", Date{5784, Adar, 15}, diaspora, ShushanPurimKatan, true},
		{"Fast of Esther moved to Thursday", civil(t, 2024, time.March, 21), diaspora, FastOfEsther, true},
		{"13 Adar II on Shabbos", Date{5784, AdarII, 13}, diaspora, 0, false},
		{"Purim", civil(t, 2024, time.March, 24), diaspora, Purim, true},
		{"Shushan Purim", civil(t, 2024, time.March, 25), diaspora, ShushanPurim, true},
		{"Purim in a regular year", Date{5785, Adar, 14}, diaspora, Purim, true},
		{"Erev Pesach", Date{5784, Nissan, 14}, diaspora, ErevPesach, true},
		{"Pesach", civil(t, 2024, time.April, 23), diaspora, Pesach, true},
		{"second day Pesach in Israel", Date{5784, Nissan, 16}, israel, CholHamoedPesach, true},
		{"eighth day Pesach", Date{5784, Nissan, 22}, diaspora, Pesach, true},
		{"Isru Chag Pesach in Israel", Date{5784, Nissan, 22}, israel, IsruChag, true},
		{"Pesach Sheni", Date{5784, Iyar, 14}, diaspora, PesachSheni, true},
		{"Lag BaOmer", civil(t, 2024, time.May, 26), diaspora, LagBaomer, true},
		{"Shavuos second day", Date{5784, Sivan, 7}, diaspora, Shavuos, true},
		{"Isru Chag Shavuos in Israel", Date{5784, Sivan, 7}, israel, IsruChag, true},
		{"Seventeenth of Tammuz", civil(t, 2024, time.July, 23), diaspora, SeventeenthOfTammuz, true},
		{"Tisha B'Av", civil(t, 2024, time.August, 13), diaspora, TishaBeav, true},
		{"9 Av on Shabbos", civil(t, 2022, time.August, 6), diaspora, 0, false},
		{"Tisha B'Av moved to Sunday", civil(t, 2022, time.August, 7), diaspora, TishaBeav, true},
		{"Tu B'Av", Date{5784, Av, 15}, diaspora, TuBeav, true},
		{"Erev Rosh Hashana", Date{5784, Elul, 29}, diaspora, ErevRoshHashana, true},
		{"Yom HaShoah", civil(t, 2024, time.May, 6), modern, YomHashoah, true},
		{"Yom HaZikaron", civil(t, 2024, time.May, 13), modern, YomHazikaron, true},
		{"Yom Ha'atzmaut", civil(t, 2024, time.May, 14), modern, YomHaatzmaut, true},
		{"Yom Yerushalayim", Date{5784, Iyar, 28}, modern, YomYerushalayim, true},
		{"modern days off by default", civil(t, 2024, time.May, 14), israel, 0, false},
		{"ordinary day", civil(t, 2023, time.December, 20), diaspora, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HolidayOf(tt.date, tt.opts)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got, "got %s", got)
			}
		})
	}
}

func TestDayOfChanukah(t *testing.T) {
	// 5784 has a short Kislev, so Chanukah ends on 3 Teves.
	day, ok := DayOfChanukah(Date{5784, Kislev, 25})
	assert.True(t, ok)
	assert.Equal(t, 1, day)

	day, ok = DayOfChanukah(civil(t, 2023, time.December, 15))
	assert.True(t, ok)
	assert.Equal(t, 8, day)

	_, ok = DayOfChanukah(Date{5784, Teves, 4})
	assert.False(t, ok)

	// 5785 has a full Kislev, so Chanukah ends on 2 Teves.
	day, ok = DayOfChanukah(Date{5785, Teves, 2})
	assert.True(t, ok)
	assert.Equal(t, 8, day)

	_, ok = DayOfChanukah(Date{5785, Teves, 3})
	assert.False(t, ok)
	_, ok = HolidayOf(Date{5785, Teves, 3}, Options{})
	assert.False(t, ok)

	_, ok = DayOfChanukah(Date{5785, Kislev, 24})
	assert.False(t, ok)
}

func TestRoshChodesh(t *testing.T) {
	assert.True(t, IsRoshChodesh(Date{5785, Cheshvan, 30}))
	assert.True(t, IsRoshChodesh(Date{5785, Kislev, 1}))
	assert.False(t, IsRoshChodesh(Date{5785, Tishrei, 1}))
	assert.False(t, IsRoshChodesh(Date{5785, Kislev, 2}))

	assert.True(t, IsErevRoshChodesh(Date{5785, Cheshvan, 29}))
	assert.False(t, IsErevRoshChodesh(Date{5785, Elul, 29}))
}

func TestCalendar_DayFlags(t *testing.T) {
	c, err := NewHebrew(5784, Tishrei, 10)
	require.NoError(t, err)
	assert.True(t, c.IsTaanis())
	assert.True(t, c.IsYomTovAssurBemelacha())
	assert.False(t, c.IsCholHamoed())

	require.NoError(t, c.SetJewishDate(5784, Tishrei, 17))
	assert.True(t, c.IsCholHamoed())
	assert.False(t, c.IsYomTovAssurBemelacha())

	require.NoError(t, c.SetJewishDate(5784, Nissan, 22))
	assert.True(t, c.IsYomTovAssurBemelacha())
	c.InIsrael = true
	assert.False(t, c.IsYomTovAssurBemelacha())

	require.NoError(t, c.SetJewishDate(5784, Kislev, 28))
	assert.True(t, c.IsChanukah())
	day, ok := c.DayOfChanukah()
	assert.True(t, ok)
	assert.Equal(t, 4, day)
	yt, ok := c.YomTov()
	assert.True(t, ok)
	assert.Equal(t, Chanukah, yt)
}

func TestCalendar_SetJewishDateKeepsCursorOnError(t *testing.T) {
	c, err := NewHebrew(5785, Adar, 14)
	require.NoError(t, err)

	err = c.SetJewishDate(5785, AdarII, 14)
	assert.True(t, IsInvalidField(err))
	assert.Equal(t, Date{5785, Adar, 14}, c.Date())
	assert.False(t, c.IsJewishLeapYear())
	assert.Equal(t, Shelaimim, c.CheshvanKislevKviah())
	assert.Equal(t, 355, c.DaysInJewishYear())
	assert.Equal(t, 29, c.DaysInJewishMonth())
}
