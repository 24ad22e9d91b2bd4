package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tobiclare/studylog/internal/models"
	"github.com/tobiclare/studylog/internal/timeutil"
)

// Activity levels follow the familiar contribution-graph scheme: level 0
// is an inactive day and levels 1-4 are increasingly intense study days.
const (
	levelOne   = 30
	levelTwo   = 60
	levelThree = 120
	levelFour  = 240
)

var levelColors = map[int]string{
	0: "#ebedf0",
	1: "#9be9a8",
	2: "#40c463",
	3: "#30a14e",
	4: "#216e39",
}

// Cell is one day in the contribution heatmap.
type Cell struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
	Level   int    `json:"level"`
	Weekday int    `json:"weekday"`
}

// Level buckets a day's study minutes into an activity level from 0 to 4.
// Any activity at all counts as at least level 1.
func Level(minutes int) int {
	switch {
	case minutes >= levelFour:
		return 4
	case minutes >= levelThree:
		return 3
	case minutes >= levelTwo:
		return 2
	case minutes >= levelOne:
		return 1
	case minutes > 0:
		return 1
	default:
		return 0
	}
}

// Grid builds the heatmap cells for the given number of days ending on
// end, oldest first.
func Grid(daily map[string]int, end time.Time, days int) []Cell {
	grid := make([]Cell, 0, days)

	day := timeutil.RoundToStart(end).AddDate(0, 0, -(days - 1))

	for i := 0; i < days; i++ {
		date := day.Format(models.DateLayout)
		mins := daily[date]

		grid = append(grid, Cell{
			Date:    date,
			Minutes: mins,
			Level:   Level(mins),
			Weekday: int(day.Weekday()),
		})

		day = day.AddDate(0, 0, 1)
	}

	return grid
}

// RenderHeatmap renders the grid as rows of colored blocks, one row per
// weekday, in the style of a contribution graph.
func RenderHeatmap(grid []Cell) string {
	styles := make(map[int]lipgloss.Style, len(levelColors))
	for level, hex := range levelColors {
		styles[level] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex))
	}

	// Pad the first week so that columns align on weeks.
	var rows [7][]string

	if len(grid) > 0 {
		for i := 0; i < grid[0].Weekday; i++ {
			rows[i] = append(rows[i], " ")
		}
	}

	for _, cell := range grid {
		rows[cell.Weekday] = append(
			rows[cell.Weekday],
			styles[cell.Level].Render("■"),
		)
	}

	var s strings.Builder

	labels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	for i, row := range rows {
		s.WriteString(fmt.Sprintf("%-4s", labels[i]))
		s.WriteString(strings.Join(row, " "))
		s.WriteString("\n")
	}

	s.WriteString("\n     Less ")

	for level := 0; level <= 4; level++ {
		s.WriteString(styles[level].Render("■") + " ")
	}

	s.WriteString("More\n")

	return s.String()
}

// ShareText builds a short plain-text summary suitable for pasting into a
// chat or social post.
func ShareText(b Breakdown) string {
	hrs, mins := timeutil.MinsToHoursAndMins(b.TotalMinutes)

	var s strings.Builder

	s.WriteString("My study stats:\n\n")
	s.WriteString(fmt.Sprintf("Current streak: %d days\n", b.Streak))
	s.WriteString(fmt.Sprintf("Longest streak: %d days\n", b.LongestStreak))
	s.WriteString(fmt.Sprintf("Active days: %d\n", b.ActiveDays))
	s.WriteString(fmt.Sprintf("Total study time: %dh %dm\n", hrs, mins))
	s.WriteString(fmt.Sprintf("Sessions logged: %d\n", b.TotalSessions))

	return s.String()
}
