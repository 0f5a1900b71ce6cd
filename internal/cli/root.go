package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/evanmoss/blink/internal/completion"
	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/events"
	"github.com/evanmoss/blink/internal/reminder"
	"github.com/evanmoss/blink/internal/resttimer"
	"github.com/evanmoss/blink/internal/storage"
)

// Context carries the explicitly constructed services into each command.
// Everything is wired in main; no command reaches for process-wide state.
type Context struct {
	Store       storage.Provider
	Timer       *resttimer.Timer
	Reminders   *reminder.Scheduler
	Completions *completion.Handler
	Bus         *events.Bus
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	unlockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// RegisterPrinters subscribes the CLI's toast output to the event bus.
func (c *Context) RegisterPrinters() {
	c.Bus.OnReward(func(e events.RewardEvent) {
		if e.Partial {
			fmt.Printf("Partial credit: +%d energy\n", e.Amount)
		} else {
			fmt.Printf("Rest complete: +%d energy\n", e.Amount)
		}
	})
	c.Bus.OnUnlock(func(e events.UnlockEvent) {
		fmt.Println(unlockStyle.Render(fmt.Sprintf("🌱 New plant unlocked! (%d rests)", e.Threshold)))
	})
}

// FormatDuration renders a duration as mm:ss or h:mm:ss.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ParseClock parses an HH:MM string into today's instant, rolling to
// tomorrow when the time has already passed.
func ParseClock(clock string, now time.Time) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}
