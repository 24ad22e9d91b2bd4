package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/tobiclare/studylog/internal/models"
	"github.com/tobiclare/studylog/internal/timeutil"
	"github.com/tobiclare/studylog/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
	topicLimit    = 10
)

// getSummary retrieves the session summary for the log.
func getSummary(b Breakdown) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	hrs, mins := timeutil.MinsToHoursAndMins(b.TotalMinutes)

	timeLogged := fmt.Sprintf(
		"Time logged: %s\n",
		ui.Green(fmt.Sprintf("%dh %dm", hrs, mins)),
	)

	sessions := fmt.Sprintln(
		"Sessions:",
		ui.Green(b.TotalSessions),
	)

	streakValue := ui.Green(fmt.Sprintf("%d days", b.Streak))
	if b.Streak == 0 {
		streakValue = ui.Yellow("0 days")
	}

	streakLine := fmt.Sprintln("Current streak:", streakValue)

	longest := fmt.Sprintln(
		"Longest streak:",
		ui.Green(fmt.Sprintf("%d days", b.LongestStreak)),
	)

	return header + timeLogged + sessions + streakLine + longest
}

// getAverages retrieves the per-day averages for the log.
func getAverages(b Breakdown) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Days"))

	active := fmt.Sprintln("Active days:", ui.Green(b.ActiveDays))

	avg := fmt.Sprintln(
		"Minutes per active day:",
		ui.Green(b.AvgMinutesPerActiveDay),
	)

	best := fmt.Sprintln(
		"Best day:",
		ui.Green(fmt.Sprintf("%d minutes", b.MaxMinutesInDay)),
	)

	return header + active + avg + best
}

// getDailyChart renders a horizontal bar chart of minutes per day for the
// trailing window.
func getDailyChart(daily map[string]int, end time.Time, days int) string {
	if len(daily) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\nDaily breakdown (minutes, last %d days)", days))

	var bars pterm.Bars

	day := timeutil.RoundToStart(end).AddDate(0, 0, -(days - 1))

	for i := 0; i < days; i++ {
		date := day.Format(models.DateLayout)

		bars = append(bars, pterm.Bar{
			Value: daily[date],
			Label: day.Format("Jan 02"),
		})

		day = day.AddDate(0, 0, 1)
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// getTopics retrieves the per-topic breakdown, limited to the busiest
// topics.
func getTopics(topics []TopicTotal) string {
	if len(topics) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Topics")))

	if len(topics) > topicLimit {
		topics = topics[:topicLimit]
	}

	for _, v := range topics {
		hrs, mins := timeutil.MinsToHoursAndMins(v.Minutes)

		builder.WriteString(fmt.Sprintf(
			"%s: %s across %s\n",
			v.Topic,
			ui.Green(fmt.Sprintf("%dh %dm", hrs, mins)),
			ui.Green(fmt.Sprintf("%d sessions", v.Sessions)),
		))
	}

	return builder.String()
}

// getWeekdayChart renders minutes aggregated by weekday.
func getWeekdayChart(daily map[string]int, loc *time.Location) string {
	if len(daily) == 0 {
		return ""
	}

	totals := make(map[int]int)

	for date, mins := range daily {
		day, err := time.ParseInLocation(models.DateLayout, date, loc)
		if err != nil {
			continue
		}

		totals[int(day.Weekday())] += mins
	}

	header := ui.Blue("\nWeekly breakdown (minutes)")

	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}

	sort.Ints(keys)

	var bars pterm.Bars

	for _, k := range keys {
		bars = append(bars, pterm.Bar{
			Value: totals[k],
			Label: time.Weekday(k).String(),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Show computes the statistics for the provided sessions and writes the
// rendered report to w.
func Show(w io.Writer, sessions []models.Session, chartDays int) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	now := time.Now()

	b := ComputeBreakdown(sessions, now)

	output := fmt.Sprint(
		getSummary(b),
		getAverages(b),
		getTopics(b.Topics),
		getDailyChart(b.Daily, now, chartDays),
		getWeekdayChart(b.Daily, now.Location()),
	)

	_, err := fmt.Fprintln(w, strings.TrimSpace(output))

	return err
}
