package generator

import (
	"fmt"
	"strings"
	"time"
)

// turkishMonths maps time.Month onto the uppercase Turkish month names used
// in day headers and file names.
var turkishMonths = [...]string{
	time.January:   "OCAK",
	time.February:  "ŞUBAT",
	time.March:     "MART",
	time.April:     "NİSAN",
	time.May:       "MAYIS",
	time.June:      "HAZİRAN",
	time.July:      "TEMMUZ",
	time.August:    "AĞUSTOS",
	time.September: "EYLÜL",
	time.October:   "EKİM",
	time.November:  "KASIM",
	time.December:  "ARALIK",
}

// FormatDate renders a date as a zero-padded day plus the Turkish month,
// e.g. "02 OCAK".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), turkishMonths[t.Month()])
}

// FileBaseName builds the extension-less output file name for one list:
// the patient name uppercased followed by the list's date range, e.g.
// "AYŞE YILMAZ (02 OCAK - 05 OCAK)".
func FileBaseName(patientName string, start, end time.Time) string {
	return fmt.Sprintf("%s (%s - %s)",
		strings.ToUpper(strings.TrimSpace(patientName)),
		FormatDate(start), FormatDate(end))
}
