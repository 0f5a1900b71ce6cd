package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/evanmoss/blink/internal/cli"
	"github.com/evanmoss/blink/internal/completion"
	"github.com/evanmoss/blink/internal/constants"
	errs "github.com/evanmoss/blink/internal/errors"
	"github.com/evanmoss/blink/internal/events"
	"github.com/evanmoss/blink/internal/logger"
	"github.com/evanmoss/blink/internal/notify"
	"github.com/evanmoss/blink/internal/reminder"
	"github.com/evanmoss/blink/internal/resttimer"
	"github.com/evanmoss/blink/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json extension selects the plain-file backend." type:"string" default:"~/.config/blink/blink.db"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize blink storage and onboarding."`
	Start    cli.StartCmd    `cmd:"" help:"Start a rest."`
	Cancel   cli.CancelCmd   `cmd:"" help:"Cancel the active rest (partial credit)."`
	Pause    cli.PauseCmd    `cmd:"" help:"Pause the active rest."`
	Resume   cli.ResumeCmd   `cmd:"" help:"Resume a paused rest."`
	Status   cli.StatusCmd   `cmd:"" help:"Show the timer and next reminder." default:"1"`
	Check    cli.CheckCmd    `cmd:"" help:"Reconcile a rest that finished while the app was closed."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show rest totals, streak and energy."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
	Remind   struct {
		Next      cli.RemindNextCmd      `cmd:"" help:"Re-arm the next reminder from now." default:"1"`
		Custom    cli.RemindCustomCmd    `cmd:"" help:"Arm a reminder at a specific time."`
		Temp      cli.RemindTempCmd      `cmd:"" help:"Set a temporary reminder interval."`
		ClearTemp cli.RemindClearTempCmd `cmd:"" help:"Clear the temporary interval."`
	} `cmd:"" help:"Manage rest reminders."`
	Wakeup struct {
		Enable  cli.WakeupEnableCmd  `cmd:"" help:"Enable the daily wake-up alert."`
		Disable cli.WakeupDisableCmd `cmd:"" help:"Disable the daily wake-up alert."`
		Log     cli.WakeupLogCmd     `cmd:"" help:"Log a wake-up confirmation."`
	} `cmd:"" help:"Manage the daily wake-up alert."`
	History struct {
		List   cli.HistoryListCmd   `cmd:"" help:"List logged rests." default:"1"`
		Delete cli.HistoryDeleteCmd `cmd:"" help:"Delete a history entry."`
	} `cmd:"" help:"Manage rest history."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Eye-rest reminders with a garden that grows as you rest"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	var backing storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		backing = storage.NewJSONStore(CLI.Config)
	} else {
		backing = storage.NewSQLiteStore(CLI.Config)
	}
	store := storage.WithFallback(backing)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	bus := events.NewBus()
	notifier := notify.NewTrayScheduler()
	handler := completion.New(store, bus)
	reminders := reminder.New(store, notifier)
	timer := resttimer.New(store, notifier, reminders, handler)

	appCtx := &cli.Context{
		Store:       store,
		Timer:       timer,
		Reminders:   reminders,
		Completions: handler,
		Bus:         bus,
	}
	appCtx.RegisterPrinters()

	isInit := ctx.Selected() != nil && ctx.Selected().Name == "init"
	if !isInit {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}

		// Foreground re-entry: a rest that ran out while no process was
		// alive is reconciled before any command runs.
		if _, err := timer.Recover(); err != nil {
			logger.Error("Recovery pass failed", "error", err)
		}
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("Failed to close storage", "error", cerr)
	}
	errs.Fatal(err)
}
