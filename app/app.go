// Package app defines the studylog command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/tobiclare/studylog/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the studylog app instance.
func Get() *cli.App {
	studylogApp := &cli.App{
		Name: "studylog",
		Authors: []*cli.Author{
			{
				Name:  "Tobi Clare",
				Email: "tobi@tobiclare.dev",
			},
		},
		Usage: `
		Studylog is a study-session timer for the command-line. Time your
		study sessions per topic, build a daily streak, and review your
		progress with detailed statistics.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "list",
				Usage:  "List logged study sessions, newest first",
				Action: listAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					jsonFlag,
				},
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with detailed statistics reporting. Defaults to a
				reporting period of all time`,
				Action: statsAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					jsonFlag,
					daysFlag,
				},
			},
			{
				Name:   "map",
				Usage:  "Display an activity map of your study history",
				Action: mapAction,
				Flags: []cli.Flag{
					mapDaysFlag,
				},
			},
			{
				Name:   "share",
				Usage:  "Print a shareable summary of your study stats",
				Action: shareAction,
			},
			{
				Name:   "export",
				Usage:  "Export the session log as CSV",
				Action: exportAction,
				Flags: []cli.Flag{
					outputFlag,
				},
			},
			{
				Name:      "import",
				Usage:     "Import sessions from a CSV file into the log",
				UsageText: "studylog import <file>",
				Action:    importAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve the session log and statistics over HTTP",
				Action: serveAction,
				Flags: []cli.Flag{
					statsPortFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			goalFlag,
			recentFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return studylogApp
}
