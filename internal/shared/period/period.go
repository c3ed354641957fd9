package period

import (
	"iter"
	"time"
)

const DateLayout = "2006-01-02"

// Period is an inclusive range of calendar days, normalized to UTC midnight.
type Period struct {
	Start time.Time
	End   time.Time
}

// Month returns [first_of_month, last_of_month] in UTC.
func Month(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p Period) IsEmpty() bool {
	return p.Start.After(p.End)
}

// From clips the start of p to from when from falls later. The result may be
// empty when from is after End.
func (p Period) From(from time.Time) Period {
	from = Day(from)
	if from.After(p.Start) {
		return Period{Start: from, End: p.End}
	}
	return p
}

// Days yields every date in p in ascending order. Each range over the
// sequence starts again from Start.
func (p Period) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (p Period) String() string {
	return "[" + p.Start.Format(DateLayout) + ", " + p.End.Format(DateLayout) + "]"
}
