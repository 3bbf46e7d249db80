package tariff

import "time"

// Split carries a call's duration divided across the two rate tiers.
type Split struct {
	StandardSeconds int64
	ReducedSeconds  int64
}

func (s Split) TotalSeconds() int64 {
	return s.StandardSeconds + s.ReducedSeconds
}

// SplitInterval decomposes [answer, end) into contiguous sub-intervals
// bounded by clock-hour transitions, classifies each by its start instant
// and accumulates the durations per tier. The decomposition walks hour by
// hour, so intervals spanning midnight, weekends or multiple days need no
// special casing. Invariant: the tier durations sum to end-answer exactly.
func SplitInterval(p Policy, answer, end time.Time) Split {
	if end.Before(answer) {
		end = answer
	}

	var split Split
	for cursor := answer; cursor.Before(end); {
		next := cursor.Truncate(time.Hour).Add(time.Hour)
		if next.After(end) {
			next = end
		}
		seconds := int64(next.Sub(cursor) / time.Second)
		if p.Reduced(cursor) {
			split.ReducedSeconds += seconds
		} else {
			split.StandardSeconds += seconds
		}
		cursor = next
	}
	return split
}
