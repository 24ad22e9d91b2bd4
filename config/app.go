package config

import (
	"errors"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDailyGoalMinutes     = "settings.daily_goal_minutes"
	keyRecentLimit          = "settings.recent_limit"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyChartDays            = "settings.chart_days"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
)

const (
	defaultDailyGoalMinutes = 60
	defaultRecentLimit      = 10
	defaultChartDays        = 14
)

var errInitFailed = errors.New(
	"unable to initialise studylog settings from the configuration file",
)

// AppConfig represents the program configuration derived from the config
// file and command-line arguments.
type AppConfig struct {
	PathToConfig   string `json:"path_to_config"`
	PathToDB       string `json:"path_to_db"`
	SessionCmd     string `json:"session_cmd"`
	DailyGoal      int    `json:"daily_goal_minutes"`
	RecentLimit    int    `json:"recent_limit"`
	ChartDays      int    `json:"chart_days"`
	Notify         bool   `json:"notify"`
	DarkTheme      bool   `json:"dark_theme"`
	TwentyFourHour bool   `json:"twenty_four_hour_clock"`
}

var appCfg = &AppConfig{}

var once sync.Once

// setDefaults registers the default value for each setting so that a
// freshly written config file is fully populated.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyDailyGoalMinutes, defaultDailyGoalMinutes)
	v.SetDefault(keyRecentLimit, defaultRecentLimit)
	v.SetDefault(keyChartDays, defaultChartDays)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
}

// initAppConfig reads the config file, creating it with default values
// when it does not exist yet.
func initAppConfig() error {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("yaml")

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err := v.WriteConfigAs(configFilePath); err != nil {
			return err
		}
	}

	appCfg.PathToConfig = configFilePath
	appCfg.PathToDB = dbFilePath

	appCfg.DailyGoal = v.GetInt(keyDailyGoalMinutes)
	appCfg.RecentLimit = v.GetInt(keyRecentLimit)
	appCfg.ChartDays = v.GetInt(keyChartDays)
	appCfg.SessionCmd = v.GetString(keySessionCmd)
	appCfg.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	appCfg.Notify = v.GetBool(keyNotificationsEnabled)
	appCfg.DarkTheme = v.GetBool(keyDarkTheme)

	return nil
}

// setAppConfig overrides file-based settings with command-line arguments.
func setAppConfig(ctx *cli.Context) {
	if ctx.Bool("disable-notification") {
		appCfg.Notify = false
	}

	if ctx.String("session-cmd") != "" {
		appCfg.SessionCmd = ctx.String("session-cmd")
	}

	if ctx.Uint("goal") > 0 {
		appCfg.DailyGoal = int(ctx.Uint("goal"))
	}

	if ctx.Uint("recent") > 0 {
		appCfg.RecentLimit = int(ctx.Uint("recent"))
	}
}

// App initializes and returns the application configuration. This
// initialization is done just once no matter how many times it is called.
func App(ctx *cli.Context) *AppConfig {
	once.Do(func() {
		err := initAppConfig()
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		setAppConfig(ctx)
	})

	return appCfg
}
