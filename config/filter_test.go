package config

import (
	"testing"
	"time"

	"github.com/tobiclare/studylog/internal/timeutil"
)

func TestGetTimeRange(t *testing.T) {
	now := time.Now()

	for _, period := range timeutil.PeriodCollection {
		start, end := getTimeRange(period)

		if start.After(end) {
			t.Errorf(
				"%s: expected start (%v) to precede end (%v)",
				period,
				start,
				end,
			)
		}

		switch period {
		case timeutil.PeriodAllTime:
			if !start.IsZero() {
				t.Errorf("%s: expected zero start, got %v", period, start)
			}
		case timeutil.PeriodToday:
			if start.Day() != now.Day() {
				t.Errorf("%s: expected start on today, got %v", period, start)
			}
		case timeutil.PeriodYesterday:
			if !end.Before(timeutil.RoundToStart(now)) {
				t.Errorf(
					"%s: expected the range to end before today, got %v",
					period,
					end,
				)
			}
		}
	}
}

func TestGetTimeRangeWindowLength(t *testing.T) {
	start, end := getTimeRange(timeutil.Period7Days)

	days := int(timeutil.RoundToStart(end).Sub(start).Hours() / 24)
	if days != 6 {
		t.Errorf("Expected a 7-day window to span 6 midnights, but got: %d", days)
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-01-03")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 3 {
		t.Errorf("expected 2024-01-03, got %v", got)
	}
}
