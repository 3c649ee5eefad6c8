package receipt

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISODate is the canonical layout NormalizeDate produces.
const ISODate = "2006-01-02"

// twoDigitYearCutoff: two-digit years up to and including this value are
// read as 20xx, the rest as 19xx. A receipt dated 2031 or later misparses.
const twoDigitYearCutoff = 30

type dateLayout struct {
	layout       string
	twoDigitYear bool
}

// dateLayouts are tried in order; the first layout that parses the whole
// input wins. Day-first numeric forms come before month-first ones.
var dateLayouts = []dateLayout{
	{layout: "2006-1-2"},
	{layout: "2006/1/2"},
	{layout: "2006.1.2"},

	{layout: "2/1/2006"},
	{layout: "2-1-2006"},
	{layout: "2.1.2006"},
	{layout: "1/2/2006"},
	{layout: "1-2-2006"},
	{layout: "1.2.2006"},

	{layout: "2/1/06", twoDigitYear: true},
	{layout: "2-1-06", twoDigitYear: true},
	{layout: "2.1.06", twoDigitYear: true},
	{layout: "1/2/06", twoDigitYear: true},
	{layout: "1-2-06", twoDigitYear: true},
	{layout: "1.2.06", twoDigitYear: true},

	{layout: "2 Jan 2006"},
	{layout: "2 January 2006"},
	{layout: "2 Jan 06", twoDigitYear: true},
	{layout: "2 January 06", twoDigitYear: true},
	{layout: "2-Jan-2006"},
	{layout: "2-Jan-06", twoDigitYear: true},
	{layout: "2 Jan, 2006"},
	{layout: "Jan 2, 2006"},
	{layout: "Jan 2 2006"},
	{layout: "January 2, 2006"},
	{layout: "January 2 2006"},
	{layout: "Jan 2, 06", twoDigitYear: true},
	{layout: "Jan 2 06", twoDigitYear: true},

	{layout: "20060102"},
	{layout: "02012006"},
	{layout: "020106", twoDigitYear: true},
}

// NormalizeDate converts an OCR date string into YYYY-MM-DD. ok is false
// when nothing could parse it.
func NormalizeDate(raw string) (string, bool) {
	t, ok := ParseDate(raw)
	if !ok {
		return "", false
	}
	return t.Format(ISODate), true
}

// ParseDate is NormalizeDate returning the parsed time (UTC midnight).
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, l := range dateLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if l.twoDigitYear {
			t = expandTwoDigitYear(t)
		}
		return t, true
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

func expandTwoDigitYear(t time.Time) time.Time {
	yy := t.Year() % 100
	year := 1900 + yy
	if yy <= twoDigitYearCutoff {
		year = 2000 + yy
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
