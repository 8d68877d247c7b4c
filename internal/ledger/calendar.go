package ledger

// SolarMonths lists the twelve months of the Afghan solar year in order.
// Month names are stored on periods exactly as they appear here.
var SolarMonths = []string{
	"حمل",
	"ثور",
	"جوزا",
	"سرطان",
	"اسد",
	"سنبله",
	"میزان",
	"عقرب",
	"قوس",
	"جدی",
	"دلو",
	"حوت",
}

var solarMonthIndex = func() map[string]int {
	m := make(map[string]int, len(SolarMonths))
	for i, name := range SolarMonths {
		m[name] = i
	}
	return m
}()

// MonthIndex returns the zero-based position of a month name in the solar
// year, or -1 when the name is not a known month.
func MonthIndex(name string) int {
	if i, ok := solarMonthIndex[name]; ok {
		return i
	}
	return -1
}

// MonthName returns the month name at a zero-based index, or the empty
// string when the index is out of range.
func MonthName(index int) string {
	if index < 0 || index >= len(SolarMonths) {
		return ""
	}
	return SolarMonths[index]
}
