package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/models"
)

type InitCmd struct {
	WakeTime string `help:"Usual wake-up time (HH:MM). Skips the interactive prompt."`
	Force    bool   `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *Context) error {
	profile := models.OnboardingProfile{
		WakeHour:   constants.DefaultWakeHour,
		WakeMinute: constants.DefaultWakeMinute,
		Completed:  true,
	}

	// The flag is validated up front, before anything touches the store.
	wakeTime := strings.TrimSpace(c.WakeTime)
	if wakeTime != "" {
		parsed, err := time.Parse(constants.TimeFormat, wakeTime)
		if err != nil {
			return fmt.Errorf("invalid wake-up time %q, expected HH:MM", wakeTime)
		}
		profile.WakeHour = parsed.Hour()
		profile.WakeMinute = parsed.Minute()
	}

	if c.Force {
		if err := ctx.Store.Load(); err == nil {
			if err := ctx.Store.Clear(); err != nil {
				return fmt.Errorf("failed to clear storage: %w", err)
			}
		} else if err := ctx.Store.Init(); err != nil {
			return err
		}
	} else if err := ctx.Store.Init(); err != nil {
		return err
	}

	if wakeTime == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Usual wake-up time").
					Description("Reminders deferred by quiet hours resume two hours after this.").
					Placeholder("07:00").
					Value(&wakeTime).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return nil
						}
						if _, err := time.Parse(constants.TimeFormat, s); err != nil {
							return fmt.Errorf("expected HH:MM")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if wt := strings.TrimSpace(wakeTime); wt != "" {
			parsed, err := time.Parse(constants.TimeFormat, wt)
			if err != nil {
				return fmt.Errorf("invalid wake-up time %q, expected HH:MM", wt)
			}
			profile.WakeHour = parsed.Hour()
			profile.WakeMinute = parsed.Minute()
		}
	}

	if err := ctx.Store.Set(constants.KeySettings, models.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to save default settings: %w", err)
	}
	if err := ctx.Store.Set(constants.KeyOnboardingData, profile); err != nil {
		return fmt.Errorf("failed to save onboarding profile: %w", err)
	}

	if _, err := ctx.Reminders.ScheduleNext(); err != nil {
		return err
	}

	fmt.Printf("Initialized blink storage at %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Wake-up time set to %02d:%02d\n", profile.WakeHour, profile.WakeMinute)
	return nil
}
