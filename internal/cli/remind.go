package cli

import (
	"fmt"
	"time"

	"github.com/evanmoss/blink/internal/constants"
)

type RemindNextCmd struct{}

func (c *RemindNextCmd) Run(ctx *Context) error {
	next, err := ctx.Reminders.ScheduleNext()
	if err != nil {
		return err
	}
	if next == nil {
		fmt.Println("Notifications are disabled; no reminder armed.")
		return nil
	}
	fmt.Printf("Next reminder armed for %s %s\n", next.Date, next.FormattedTime)
	return nil
}

type RemindCustomCmd struct {
	At string `arg:"" help:"Reminder time, HH:MM (today, or tomorrow if passed) or 'YYYY-MM-DD HH:MM'."`
}

func (c *RemindCustomCmd) Run(ctx *Context) error {
	now := time.Now()

	at, err := time.ParseInLocation(constants.DateFormat+" "+constants.TimeFormat, c.At, now.Location())
	if err != nil {
		at, err = ParseClock(c.At, now)
		if err != nil {
			return err
		}
	}

	next, err := ctx.Reminders.ScheduleCustom(at)
	if err != nil {
		return err
	}
	fmt.Printf("Reminder armed for %s %s\n", next.Date, next.FormattedTime)
	return nil
}

type RemindTempCmd struct {
	Minutes int `arg:"" help:"Temporary reminder spacing in minutes."`
}

func (c *RemindTempCmd) Run(ctx *Context) error {
	if err := ctx.Reminders.SetTemporaryInterval(c.Minutes); err != nil {
		return err
	}
	fmt.Printf("Temporary interval set to %d min; reminder re-armed.\n", c.Minutes)
	return nil
}

type RemindClearTempCmd struct{}

func (c *RemindClearTempCmd) Run(ctx *Context) error {
	if err := ctx.Reminders.ClearTemporaryInterval(); err != nil {
		return err
	}
	fmt.Println("Temporary interval cleared; reminder re-armed.")
	return nil
}
