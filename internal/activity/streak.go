// Package activity holds the pure computations behind a wallet activity report:
// UTC day bucketing, streaks, transaction classification and gas totals.
package activity

import (
	"math"
	"sort"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
)

const oneDayMillis = int64(24 * time.Hour / time.Millisecond)

// Streaks summarizes the distinct active days of a wallet.
type Streaks struct {
	UniqueDays     int
	Longest        int
	Current        int
	ActivityPeriod int
}

// UTCMidnight truncates t to 00:00:00 UTC of its calendar day.
func UTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ActiveDays returns the distinct UTC-midnight days, ascending, on which the given
// transactions happened. Records with an unparsable timestamp are ignored.
func ActiveDays(txs []business.TransactionRecord) []time.Time {
	seen := make(map[int64]struct{}, len(txs))
	days := make([]time.Time, 0, len(txs))
	for _, tx := range txs {
		ts, ok := tx.Time()
		if !ok {
			continue
		}
		day := UTCMidnight(ts)
		key := day.UnixMilli()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// dayDelta is the number of days between two instants, rounded to the nearest day.
func dayDelta(from, to time.Time) int64 {
	ms := to.UnixMilli() - from.UnixMilli()
	return int64(math.Round(float64(ms) / float64(oneDayMillis)))
}

// ComputeStreaks walks sorted, distinct UTC days. now is only used to decide whether the
// last run is still open (active today or yesterday) and for the activity period.
func ComputeStreaks(days []time.Time, now time.Time) Streaks {
	if len(days) == 0 {
		return Streaks{}
	}

	longest, running := 0, 0
	for i := range days {
		if i == 0 {
			running = 1
			continue
		}
		if dayDelta(days[i-1], days[i]) == 1 {
			running++
			continue
		}
		if running > longest {
			longest = running
		}
		running = 1
	}
	if running > longest {
		longest = running
	}

	today := UTCMidnight(now)
	yesterday := today.Add(-24 * time.Hour)
	last := days[len(days)-1]

	current := 0
	if last.Equal(today) || last.Equal(yesterday) {
		current = running
	}

	period := (today.UnixMilli() - days[0].UnixMilli()) / oneDayMillis
	if period < 0 {
		period = 0
	}

	return Streaks{
		UniqueDays:     len(days),
		Longest:        longest,
		Current:        current,
		ActivityPeriod: int(period),
	}
}
