package app

import (
	"cmp"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/tobiclare/studylog/config"
	"github.com/tobiclare/studylog/export"
	"github.com/tobiclare/studylog/internal/models"
	"github.com/tobiclare/studylog/internal/ui"
	"github.com/tobiclare/studylog/session"
	"github.com/tobiclare/studylog/stats"
	"github.com/tobiclare/studylog/store"
	"github.com/tobiclare/studylog/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envStudylogNoColor = "STUDYLOG_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// sessionHelper loads the persisted log and narrows it to the time range
// given on the command-line.
func sessionHelper(ctx *cli.Context) ([]models.Session, store.Store, error) {
	conf := config.Filter(ctx)

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	sessions, err := db.LoadLog()
	if err != nil {
		return nil, nil, err
	}

	sessions = session.Filter(sessions, conf.StartTime, conf.EndTime)

	return sessions, db, nil
}

// editConfigAction handles the edit-config command which opens the
// studylog config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.App(ctx)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// listAction handles the list command and prints a table of all the
// sessions recorded within a time period.
func listAction(ctx *cli.Context) error {
	sessions, _, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return session.List(sessions)
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	sessions, _, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(stats.ComputeBreakdown(sessions, time.Now()))
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	chartDays := config.App(ctx).ChartDays
	if ctx.Uint("days") > 0 {
		chartDays = int(ctx.Uint("days"))
	}

	return stats.Show(os.Stdout, sessions, chartDays)
}

// mapAction renders a contribution-style activity map of the study log.
func mapAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	sessions, err := db.LoadLog()
	if err != nil {
		return err
	}

	now := time.Now()

	b := stats.ComputeBreakdown(sessions, now)

	days := int(ctx.Uint("days"))

	grid := stats.Grid(b.Daily, now, days)

	fmt.Println(stats.RenderHeatmap(grid))
	fmt.Print(stats.ShareText(b))

	return nil
}

// shareAction prints a short plain-text summary of the study stats.
func shareAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	sessions, err := db.LoadLog()
	if err != nil {
		return err
	}

	fmt.Print(stats.ShareText(stats.ComputeBreakdown(sessions, time.Now())))

	return nil
}

// exportAction writes the full session log as CSV to stdout or a file.
func exportAction(ctx *cli.Context) (err error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	sessions, err := db.LoadLog()
	if err != nil {
		return err
	}

	output := ctx.String("output")
	if output == "" {
		return export.Sessions(os.Stdout, sessions)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	defer func() {
		ferr := f.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	err = export.Sessions(f, sessions)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("exported %d sessions to %s", len(sessions), output)

	return err
}

// importAction merges sessions from a CSV file into the log.
func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return fmt.Errorf("please provide a CSV file to import")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	imported, rowErrs := export.Parse(f)

	for _, rowErr := range rowErrs {
		pterm.Warning.Println(rowErr)
	}

	if len(imported) == 0 {
		pterm.Info.Println("no valid sessions found to import")
		return nil
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	sessions, err := db.LoadLog()
	if err != nil {
		return err
	}

	sessions = append(sessions, imported...)

	slices.SortStableFunc(sessions, func(a, b models.Session) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})

	err = db.SaveLog(sessions)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"imported %d sessions (%d rows skipped)",
		len(imported),
		len(rowErrs),
	)

	return nil
}

// serveAction exposes the session log and statistics over HTTP.
func serveAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	return stats.Server(db, ctx.Uint("port"))
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus()
}

// defaultAction starts the interactive study timer.
func defaultAction(ctx *cli.Context) error {
	cfg := config.App(ctx)

	dbClient, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	t, err := timer.New(dbClient, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(t)

	_, err = p.Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/tobiclare/studylog/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	ui.DarkTheme = config.App(ctx).DarkTheme

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if STUDYLOG_NO_COLOR is set
	if _, exists := os.LookupEnv(envStudylogNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting studylog")

	return nil
}
