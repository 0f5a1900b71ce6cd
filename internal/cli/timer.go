package cli

import (
	"fmt"
	"time"

	"github.com/evanmoss/blink/internal/constants"
)

type StartCmd struct {
	Duration int `help:"Rest length in minutes. Defaults to the configured rest duration." short:"d"`
}

func (c *StartCmd) Run(ctx *Context) error {
	settings, err := ctx.Reminders.Settings()
	if err != nil {
		return err
	}

	duration := settings.RestDuration()
	if c.Duration != 0 {
		if c.Duration < 0 {
			return fmt.Errorf("rest duration must be positive, got %d", c.Duration)
		}
		duration = time.Duration(c.Duration) * time.Minute
	}

	state, err := ctx.Timer.Start(duration)
	if err != nil {
		return err
	}

	fmt.Printf("Rest started: %s until %s\n",
		FormatDuration(duration),
		state.EndTime().Format(constants.TimeFormat))
	return nil
}

type CancelCmd struct{}

func (c *CancelCmd) Run(ctx *Context) error {
	if err := ctx.Timer.Cancel(); err != nil {
		return err
	}
	fmt.Println("Rest cancelled.")
	return nil
}

type PauseCmd struct{}

func (c *PauseCmd) Run(ctx *Context) error {
	if err := ctx.Timer.Pause(); err != nil {
		return err
	}
	fmt.Println("Rest paused.")
	return nil
}

type ResumeCmd struct{}

func (c *ResumeCmd) Run(ctx *Context) error {
	if err := ctx.Timer.Resume(); err != nil {
		return err
	}
	fmt.Println("Rest resumed.")
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	state, err := ctx.Timer.State()
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Println(headingStyle.Render("Timer"))
	switch {
	case state == nil:
		fmt.Println(dimStyle.Render("  No rest in progress."))
	case state.IsPaused:
		fmt.Printf("  Paused, %s remaining\n", valueStyle.Render(FormatDuration(state.Remaining(now))))
	default:
		fmt.Printf("  Running, %s remaining (ends %s)\n",
			valueStyle.Render(FormatDuration(state.Remaining(now))),
			state.EndTime().Format(constants.TimeFormat))
	}

	next, err := ctx.Reminders.Next()
	if err != nil {
		return err
	}
	fmt.Println(headingStyle.Render("Next reminder"))
	if next == nil {
		fmt.Println(dimStyle.Render("  None armed."))
	} else {
		fmt.Printf("  %s at %s\n", next.Date, valueStyle.Render(next.FormattedTime))
	}
	return nil
}

// CheckCmd runs the recovery pass explicitly. The same pass runs before
// every command; this surfaces the result.
type CheckCmd struct{}

func (c *CheckCmd) Run(ctx *Context) error {
	recovered, err := ctx.Timer.Recover()
	if err != nil {
		return err
	}
	if !recovered {
		fmt.Println("Nothing to reconcile.")
	}
	return nil
}
