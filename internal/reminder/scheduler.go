// Package reminder computes and persists the next reminder instant and
// keeps the platform alarm for it armed.
package reminder

import (
	"errors"
	"fmt"
	"time"

	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/logger"
	"github.com/evanmoss/blink/internal/models"
	"github.com/evanmoss/blink/internal/notify"
	"github.com/evanmoss/blink/internal/quiet"
	"github.com/evanmoss/blink/internal/storage"
)

// Scheduler is the sole writer of nextReminderTime and of the temporary
// interval override inside settings. Each schedule operation cancels the
// identically-keyed prior alarm before arming a new one, so repeated calls
// never accumulate duplicates.
type Scheduler struct {
	store    storage.Provider
	notifier notify.Scheduler

	// Now is the clock; swapped out in tests.
	Now func() time.Time
}

func New(store storage.Provider, notifier notify.Scheduler) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		Now:      time.Now,
	}
}

// ScheduleNext re-arms the reminder at now + effective interval, shifted
// out of quiet hours if needed. Returns nil when notifications are
// disabled, after clearing any persisted reminder.
func (s *Scheduler) ScheduleNext() (*models.NextReminder, error) {
	return s.ScheduleNextFrom(s.Now())
}

// ScheduleNextFrom pre-arms the reminder relative to a base instant. The
// timer uses this at start with its own end time as base, so a reminder
// exists even if the process is killed before the rest completes.
func (s *Scheduler) ScheduleNextFrom(base time.Time) (*models.NextReminder, error) {
	if err := s.notifier.Cancel(constants.NotificationIDReminder); err != nil {
		logger.Warn("Failed to cancel prior reminder alarm", "error", err)
	}

	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}

	if !settings.NotificationsEnabled {
		if err := s.store.Remove(constants.KeyNextReminderTime); err != nil {
			logger.Warn("Failed to clear persisted reminder", "error", err)
		}
		return nil, nil
	}

	target := base.Add(settings.EffectiveInterval())
	if quiet.IsQuietHours(target, settings) {
		profile := s.Profile()
		target = quiet.NextActiveTime(target, settings, profile)
	}

	return s.arm(target, settings)
}

// ScheduleCustom arms a reminder at a user-chosen instant. Explicit user
// choice takes precedence: no quiet-hours adjustment is applied.
func (s *Scheduler) ScheduleCustom(at time.Time) (*models.NextReminder, error) {
	if err := s.notifier.Cancel(constants.NotificationIDReminder); err != nil {
		logger.Warn("Failed to cancel prior reminder alarm", "error", err)
	}

	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}
	if !settings.NotificationsEnabled {
		return nil, fmt.Errorf("notifications are disabled")
	}
	if !at.After(s.Now()) {
		return nil, fmt.Errorf("reminder time must be in the future")
	}

	return s.arm(at, settings)
}

func (s *Scheduler) arm(at time.Time, settings models.Settings) (*models.NextReminder, error) {
	next := models.NewNextReminder(constants.NotificationIDReminder, at)
	if err := s.store.Set(constants.KeyNextReminderTime, next); err != nil {
		return nil, fmt.Errorf("failed to persist reminder: %w", err)
	}

	payload := notify.Payload{
		Text:    "Time to rest your eyes",
		Screen:  constants.ScreenTimer,
		Vibrate: settings.VibrationEnabled,
	}
	if err := s.notifier.ScheduleAt(next.ID, at, payload); err != nil {
		// Not retried: the persisted reminder is re-armed on the next
		// scheduling pass anyway.
		logger.Error("Failed to arm reminder alarm", "at", at, "error", err)
	}

	return &next, nil
}

// SetTemporaryInterval overrides the reminder spacing and re-arms. The
// change applies from the next scheduling pass; an already-armed earlier
// reminder is replaced here, not adjusted retroactively.
func (s *Scheduler) SetTemporaryInterval(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("temporary interval must be positive, got %d", minutes)
	}

	settings, err := s.Settings()
	if err != nil {
		return err
	}
	settings.TemporaryIntervalMin = &minutes
	if err := s.store.Set(constants.KeySettings, settings); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}

	_, err = s.ScheduleNext()
	return err
}

// ClearTemporaryInterval restores the default spacing and re-arms.
func (s *Scheduler) ClearTemporaryInterval() error {
	settings, err := s.Settings()
	if err != nil {
		return err
	}
	settings.TemporaryIntervalMin = nil
	if err := s.store.Set(constants.KeySettings, settings); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}

	_, err = s.ScheduleNext()
	return err
}

// ScheduleWakeup arms the independent daily wake-up alert, or cancels it
// when the toggle is off.
func (s *Scheduler) ScheduleWakeup() error {
	settings, err := s.Settings()
	if err != nil {
		return err
	}

	if !settings.WakeupNotificationEnabled {
		if err := s.notifier.Cancel(constants.NotificationIDWakeup); err != nil {
			logger.Warn("Failed to cancel wake-up alarm", "error", err)
		}
		return nil
	}

	profile := s.WakeProfile()
	first := NextWakeupTime(s.Now(), profile)
	logger.Debug("Arming daily wake-up alert", "first", first)

	payload := notify.Payload{
		Text:    "Good morning! Check in with your garden",
		Screen:  constants.ScreenTimer,
		Vibrate: settings.VibrationEnabled,
	}
	if err := s.notifier.ScheduleDaily(constants.NotificationIDWakeup, profile.WakeHour, profile.WakeMinute, payload); err != nil {
		logger.Error("Failed to arm wake-up alarm", "error", err)
	}
	return nil
}

// NextWakeupTime returns the next occurrence of the usual wake-up time:
// today's instant if still ahead, else tomorrow's.
func NextWakeupTime(now time.Time, profile models.OnboardingProfile) time.Time {
	today := profile.WakeTimeOn(now)
	if today.After(now) {
		return today
	}
	return today.AddDate(0, 0, 1)
}

// Next returns the persisted upcoming reminder, nil when none is armed or
// the armed instant has already passed without renewal.
func (s *Scheduler) Next() (*models.NextReminder, error) {
	var next models.NextReminder
	err := s.store.Get(constants.KeyNextReminderTime, &next)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !next.Time().After(s.Now()) {
		if err := s.store.Remove(constants.KeyNextReminderTime); err != nil {
			logger.Warn("Failed to clear stale reminder", "error", err)
		}
		return nil, nil
	}
	return &next, nil
}

// Settings loads persisted settings, applying defaults for a missing or
// partial record.
func (s *Scheduler) Settings() (models.Settings, error) {
	var settings models.Settings
	err := s.store.Get(constants.KeySettings, &settings)
	if errors.Is(err, storage.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	settings.Normalize()
	return settings, nil
}

// WakeProfile returns the onboarding profile with the default wake-up
// time filled in when onboarding never completed, so the daily alert has
// a sensible anchor instead of midnight.
func (s *Scheduler) WakeProfile() models.OnboardingProfile {
	profile := s.Profile()
	if !profile.Completed {
		profile.WakeHour = constants.DefaultWakeHour
		profile.WakeMinute = constants.DefaultWakeMinute
	}
	return profile
}

// Profile loads the onboarding profile; an absent record yields a profile
// that defers to quiet-hours end as the wake-up anchor.
func (s *Scheduler) Profile() models.OnboardingProfile {
	var profile models.OnboardingProfile
	if err := s.store.Get(constants.KeyOnboardingData, &profile); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to load onboarding profile", "error", err)
		}
		return models.OnboardingProfile{}
	}
	return profile
}
