package budget

import "time"

// Window is a calendar month. Start is the first day at 00:00 and the window
// runs up to, but not including, the first day of the following month.
type Window struct {
	Start time.Time
	until time.Time
}

// MonthOf returns the window for the calendar month containing t.
func MonthOf(t time.Time) Window {
	return MonthWindow(t.Year(), t.Month(), t.Location())
}

// MonthWindow returns the window for the given year and month.
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		until: start.AddDate(0, 1, 0),
	}
}

// Until is the exclusive upper bound, used for range queries.
func (w Window) Until() time.Time {
	return w.until
}

// LastDay is the last calendar day of the month, at 00:00.
func (w Window) LastDay() time.Time {
	return w.until.AddDate(0, 0, -1)
}

// Contains reports whether t falls inside the month.
func (w Window) Contains(t time.Time) bool {
	t = t.In(w.Start.Location())
	return !t.Before(w.Start) && t.Before(w.until)
}
