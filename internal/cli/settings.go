package cli

import (
	"fmt"

	"github.com/evanmoss/blink/internal/constants"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool `help:"Enable or disable reminder notifications."`
	VibrationEnabled     *bool `help:"Enable or disable vibration."`
	RestInterval         *int  `help:"Minutes between rest reminders."`
	RestDuration         *int  `help:"Rest length in minutes."`
	WakeupEnabled        *bool `help:"Enable or disable the daily wake-up alert."`
	QuietStart           *int  `help:"Quiet hours start (0-23)."`
	QuietEnd             *int  `help:"Quiet hours end (0-23)."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings, err := ctx.Reminders.Settings()
	if err != nil {
		return err
	}

	if c.List {
		temp := "unset"
		if settings.TemporaryIntervalMin != nil {
			temp = fmt.Sprintf("%d min", *settings.TemporaryIntervalMin)
		}
		fmt.Println("Current Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Vibration Enabled:     %v\n", settings.VibrationEnabled)
		fmt.Printf("  Rest Interval:         %d min\n", settings.RestIntervalMin)
		fmt.Printf("  Temporary Interval:    %s\n", temp)
		fmt.Printf("  Rest Duration:         %d min\n", settings.RestDurationMin)
		fmt.Printf("  Wake-up Alert:         %v\n", settings.WakeupNotificationEnabled)
		fmt.Printf("  Quiet Hours:           %02d:00 - %02d:00\n", settings.QuietHoursStart, settings.QuietHoursEnd)
		return nil
	}

	updated := false
	rearmReminder := false
	rearmWakeup := false

	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated, rearmReminder = true, true
	}
	if c.VibrationEnabled != nil {
		settings.VibrationEnabled = *c.VibrationEnabled
		updated = true
	}
	if c.RestInterval != nil {
		settings.RestIntervalMin = *c.RestInterval
		updated, rearmReminder = true, true
	}
	if c.RestDuration != nil {
		settings.RestDurationMin = *c.RestDuration
		updated = true
	}
	if c.WakeupEnabled != nil {
		settings.WakeupNotificationEnabled = *c.WakeupEnabled
		updated, rearmWakeup = true, true
	}
	if c.QuietStart != nil {
		settings.QuietHoursStart = *c.QuietStart
		updated, rearmReminder = true, true
	}
	if c.QuietEnd != nil {
		settings.QuietHoursEnd = *c.QuietEnd
		updated, rearmReminder = true, true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	// Invalid values are rejected here, before anything reaches the store.
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.Set(constants.KeySettings, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if rearmReminder {
		if _, err := ctx.Reminders.ScheduleNext(); err != nil {
			return err
		}
	}
	if rearmWakeup {
		if err := ctx.Reminders.ScheduleWakeup(); err != nil {
			return err
		}
	}

	fmt.Println("Settings updated successfully.")
	return nil
}
