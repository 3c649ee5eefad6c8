package sqlconfig

import "time"

// DateRange is a half-open [From, Until) interval on transaction or budget dates.
type DateRange struct {
	From  time.Time
	Until time.Time
}
