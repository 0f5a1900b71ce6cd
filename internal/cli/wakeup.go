package cli

import (
	"fmt"
	"time"

	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/reminder"
)

type WakeupEnableCmd struct{}

func (c *WakeupEnableCmd) Run(ctx *Context) error {
	return setWakeupEnabled(ctx, true)
}

type WakeupDisableCmd struct{}

func (c *WakeupDisableCmd) Run(ctx *Context) error {
	return setWakeupEnabled(ctx, false)
}

func setWakeupEnabled(ctx *Context, enabled bool) error {
	settings, err := ctx.Reminders.Settings()
	if err != nil {
		return err
	}
	settings.WakeupNotificationEnabled = enabled
	if err := ctx.Store.Set(constants.KeySettings, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if err := ctx.Reminders.ScheduleWakeup(); err != nil {
		return err
	}

	if enabled {
		next := reminder.NextWakeupTime(time.Now(), ctx.Reminders.WakeProfile())
		fmt.Printf("Daily wake-up alert armed; next at %s %s\n",
			next.Format(constants.DateFormat), next.Format(constants.TimeFormat))
	} else {
		fmt.Println("Daily wake-up alert disabled.")
	}
	return nil
}

// WakeupLogCmd records a wake-up confirmation.
type WakeupLogCmd struct{}

func (c *WakeupLogCmd) Run(ctx *Context) error {
	if err := ctx.Completions.LogWakeup(); err != nil {
		return err
	}
	fmt.Println("Wake-up logged. Good morning!")
	return nil
}
