// Package stats derives aggregate statistics from the session log
package stats

import (
	"slices"
	"time"

	"github.com/maruel/natural"

	"github.com/tobiclare/studylog/internal/models"
	"github.com/tobiclare/studylog/internal/timeutil"
)

// streakWindow bounds the backward day walk so that streak computation
// always terminates.
const streakWindow = 366

// Summary holds the core aggregate figures derived from the session log.
type Summary struct {
	TotalSessions int `json:"total_sessions"`
	TotalMinutes  int `json:"total_minutes"`
	Streak        int `json:"streak"`
}

// TopicTotal aggregates sessions and minutes for a single topic.
type TopicTotal struct {
	Topic    string `json:"topic"`
	Sessions int    `json:"sessions"`
	Minutes  int    `json:"minutes"`
}

// Breakdown extends Summary with the per-day and per-topic aggregates used
// by the stats report, the heatmap, and the shareable summary.
type Breakdown struct {
	Summary

	LongestStreak      int    `json:"longest_streak"`
	LongestStreakStart string `json:"longest_streak_start,omitempty"`
	LongestStreakEnd   string `json:"longest_streak_end,omitempty"`

	ActiveDays             int `json:"active_days"`
	MaxMinutesInDay        int `json:"max_minutes_in_day"`
	AvgMinutesPerActiveDay int `json:"avg_minutes_per_active_day"`

	// Daily maps a YYYY-MM-DD day to the total minutes studied on it.
	Daily map[string]int `json:"daily"`

	// Topics is sorted by minutes (descending), then naturally by name.
	Topics []TopicTotal `json:"topics"`
}

// dailyMinutes aggregates study minutes by calendar day.
func dailyMinutes(sessions []models.Session) map[string]int {
	daily := make(map[string]int)

	for i := range sessions {
		sess := sessions[i]

		if sess.Date == "" {
			continue
		}

		daily[sess.Date] += sess.Minutes
	}

	return daily
}

// streak counts consecutive active days walking backward from today.
// Absence on today itself does not break a streak that is otherwise
// current: a session for today may simply not be finished yet. Absence on
// any earlier day ends the walk.
func streak(daily map[string]int, today time.Time) int {
	day := timeutil.RoundToStart(today)

	var count int

	for i := 0; i < streakWindow; i++ {
		if daily[day.Format(models.DateLayout)] > 0 {
			count++
		} else if i != 0 {
			break
		}

		day = day.AddDate(0, 0, -1)
	}

	return count
}

// Compute derives the session totals and the current day streak from the
// full session log. It is pure: callers recompute after every log mutation
// instead of maintaining incremental state.
func Compute(sessions []models.Session, today time.Time) Summary {
	s := Summary{
		TotalSessions: len(sessions),
	}

	for i := range sessions {
		s.TotalMinutes += sessions[i].Minutes
	}

	s.Streak = streak(dailyMinutes(sessions), today)

	return s
}

// activeDays returns the distinct active calendar days in ascending order.
func activeDays(daily map[string]int, loc *time.Location) []time.Time {
	days := make([]time.Time, 0, len(daily))

	for date, mins := range daily {
		if mins == 0 {
			continue
		}

		day, err := time.ParseInLocation(models.DateLayout, date, loc)
		if err != nil {
			continue
		}

		days = append(days, day)
	}

	slices.SortFunc(days, func(a, b time.Time) int {
		return a.Compare(b)
	})

	return days
}

// longestRun finds the longest run of consecutive calendar days.
func longestRun(days []time.Time) (length int, start, end time.Time) {
	var runLen int

	var runStart time.Time

	for i, day := range days {
		if i == 0 || !day.Equal(days[i-1].AddDate(0, 0, 1)) {
			runLen = 0
			runStart = day
		}

		runLen++

		if runLen > length {
			length = runLen
			start = runStart
			end = day
		}
	}

	return length, start, end
}

// ComputeBreakdown derives the full aggregate breakdown from the session
// log. Like Compute, it has no side effects.
func ComputeBreakdown(sessions []models.Session, today time.Time) Breakdown {
	b := Breakdown{
		Summary: Compute(sessions, today),
		Daily:   dailyMinutes(sessions),
	}

	days := activeDays(b.Daily, today.Location())
	b.ActiveDays = len(days)

	length, start, end := longestRun(days)
	if length > 0 {
		b.LongestStreak = length
		b.LongestStreakStart = start.Format(models.DateLayout)
		b.LongestStreakEnd = end.Format(models.DateLayout)
	}

	var totalActive int

	for _, mins := range b.Daily {
		totalActive += mins

		if mins > b.MaxMinutesInDay {
			b.MaxMinutesInDay = mins
		}
	}

	if b.ActiveDays > 0 {
		b.AvgMinutesPerActiveDay = timeutil.Round(
			float64(totalActive) / float64(b.ActiveDays),
		)
	}

	b.Topics = topicTotals(sessions)

	return b
}

// topicTotals aggregates sessions and minutes per topic, ordered by
// minutes studied and then by topic name.
func topicTotals(sessions []models.Session) []TopicTotal {
	byTopic := make(map[string]*TopicTotal)

	for i := range sessions {
		sess := sessions[i]

		t, ok := byTopic[sess.Topic]
		if !ok {
			t = &TopicTotal{Topic: sess.Topic}
			byTopic[sess.Topic] = t
		}

		t.Sessions++
		t.Minutes += sess.Minutes
	}

	totals := make([]TopicTotal, 0, len(byTopic))
	for _, v := range byTopic {
		totals = append(totals, *v)
	}

	slices.SortStableFunc(totals, func(a, b TopicTotal) int {
		if a.Minutes != b.Minutes {
			return b.Minutes - a.Minutes
		}

		if natural.Less(a.Topic, b.Topic) {
			return -1
		}

		return 1
	})

	return totals
}
