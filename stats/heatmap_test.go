package stats

import (
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		minutes  int
		expected int
	}{
		{0, 0},
		{1, 1},
		{29, 1},
		{30, 1},
		{59, 1},
		{60, 2},
		{119, 2},
		{120, 3},
		{239, 3},
		{240, 4},
		{600, 4},
	}

	for _, tc := range cases {
		got := Level(tc.minutes)
		if got != tc.expected {
			t.Errorf(
				"Expected level for %d minutes to be: %d, but got: %d",
				tc.minutes,
				tc.expected,
				got,
			)
		}
	}
}

func TestGrid(t *testing.T) {
	daily := map[string]int{
		"2024-01-05": 45,
		"2024-01-06": 200,
	}

	grid := Grid(daily, day("2024-01-07"), 7)

	if len(grid) != 7 {
		t.Fatalf("Expected 7 cells, but got: %d", len(grid))
	}

	if grid[0].Date != "2024-01-01" {
		t.Errorf(
			"Expected grid to start on 2024-01-01, but got: %s",
			grid[0].Date,
		)
	}

	if grid[6].Date != "2024-01-07" {
		t.Errorf(
			"Expected grid to end on 2024-01-07, but got: %s",
			grid[6].Date,
		)
	}

	if grid[4].Minutes != 45 || grid[4].Level != 1 {
		t.Errorf(
			"Expected 2024-01-05 cell to be 45 mins at level 1, got %d mins at level %d",
			grid[4].Minutes,
			grid[4].Level,
		)
	}

	if grid[5].Level != 3 {
		t.Errorf(
			"Expected 2024-01-06 cell to be level 3, but got: %d",
			grid[5].Level,
		)
	}

	// 2024-01-01 was a Monday.
	if grid[0].Weekday != 1 {
		t.Errorf(
			"Expected 2024-01-01 weekday to be: 1, but got: %d",
			grid[0].Weekday,
		)
	}
}

func TestRenderHeatmap(t *testing.T) {
	grid := Grid(map[string]int{"2024-01-03": 90}, day("2024-01-07"), 7)

	out := RenderHeatmap(grid)

	for _, label := range []string{"Sun", "Mon", "Sat", "Less", "More"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected rendered heatmap to contain %q", label)
		}
	}

	if lines := strings.Count(out, "\n"); lines < 8 {
		t.Errorf("expected at least 8 lines, got %d", lines)
	}
}

func TestShareText(t *testing.T) {
	b := Breakdown{
		Summary: Summary{
			TotalSessions: 12,
			TotalMinutes:  150,
			Streak:        3,
		},
		LongestStreak: 5,
		ActiveDays:    8,
	}

	out := ShareText(b)

	for _, expected := range []string{
		"Current streak: 3 days",
		"Longest streak: 5 days",
		"Active days: 8",
		"Total study time: 2h 30m",
		"Sessions logged: 12",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected share text to contain %q, got:\n%s", expected, out)
		}
	}
}
