package app

import "github.com/urfave/cli/v2"

var (
	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Limit sessions to a time period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Limit sessions to those recorded after this date (e.g. '2 weeks ago')",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Limit sessions to those recorded before this date",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Output in JSON format",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is recorded",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each recorded session",
	}

	goalFlag = &cli.UintFlag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "Daily study goal in minutes (default: 60)",
	}

	recentFlag = &cli.UintFlag{
		Name:    "recent",
		Aliases: []string{"r"},
		Usage:   "The number of recent sessions to display (default: 10)",
	}

	daysFlag = &cli.UintFlag{
		Name:  "days",
		Usage: "The number of days to chart (default: 14)",
	}

	mapDaysFlag = &cli.UintFlag{
		Name:  "days",
		Usage: "The number of days to include in the activity map",
		Value: 182,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the CSV export to a file instead of standard output",
	}

	statsPortFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the statistics server",
		Value: 1111,
	}
)
