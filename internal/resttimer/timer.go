// Package resttimer drives the single rest countdown: Idle -> Running ->
// Completed, with cancel back to Idle and a paused form that stores
// remaining time instead of a deadline. The countdown owns no ticking
// loop; remaining time is always recomputed from the persisted end time
// and the wall clock, and completion is detected either by the armed
// alarm or by the recovery pass on the next foreground entry.
package resttimer

import (
	"errors"
	"fmt"
	"time"

	"github.com/evanmoss/blink/internal/completion"
	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/logger"
	"github.com/evanmoss/blink/internal/models"
	"github.com/evanmoss/blink/internal/notify"
	"github.com/evanmoss/blink/internal/reminder"
	"github.com/evanmoss/blink/internal/storage"
)

type pausedRecord struct {
	RemainingSec int `json:"remaining_sec"`
}

// Timer is the sole component that starts, pauses and cancels the
// countdown. It writes timerEndTime and timerPaused; the completion
// handler clears them when a finished rest is recorded.
type Timer struct {
	store     storage.Provider
	notifier  notify.Scheduler
	reminders *reminder.Scheduler
	handler   *completion.Handler

	// Now is the clock; swapped out in tests.
	Now func() time.Time
}

func New(store storage.Provider, notifier notify.Scheduler, reminders *reminder.Scheduler, handler *completion.Handler) *Timer {
	return &Timer{
		store:     store,
		notifier:  notifier,
		reminders: reminders,
		handler:   handler,
		Now:       time.Now,
	}
}

// State returns the persisted timer state, nil when Idle.
func (t *Timer) State() (*models.TimerState, error) {
	var endMs int64
	err := t.store.Get(constants.KeyTimerEndTime, &endMs)
	if err == nil {
		return &models.TimerState{EndTimeMs: endMs}, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	var paused pausedRecord
	err = t.store.Get(constants.KeyTimerPaused, &paused)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.TimerState{IsPaused: true, RemainingSec: paused.RemainingSec}, nil
}

// Start begins a rest of the given length. Disallowed while a rest is
// already running or paused. Besides the countdown itself, starting
// pre-arms the next reminder at end + effective interval and a completion
// alert at end, so neither depends on this process staying alive.
func (t *Timer) Start(d time.Duration) (*models.TimerState, error) {
	if d <= 0 {
		return nil, fmt.Errorf("rest duration must be positive")
	}

	// An expired leftover is reconciled, not an obstacle.
	if _, err := t.Recover(); err != nil {
		return nil, err
	}

	state, err := t.State()
	if err != nil {
		return nil, err
	}
	if state != nil {
		return nil, fmt.Errorf("a rest is already in progress")
	}

	now := t.Now()
	end := now.Add(d)

	if err := t.store.Set(constants.KeyTimerEndTime, end.UnixMilli()); err != nil {
		return nil, fmt.Errorf("failed to persist timer: %w", err)
	}

	if _, err := t.reminders.ScheduleNextFrom(end); err != nil {
		logger.Warn("Failed to pre-arm next reminder", "error", err)
	}
	t.armCompletionAlert(end)

	return &models.TimerState{EndTimeMs: end.UnixMilli()}, nil
}

// Pause freezes the countdown, storing remaining seconds instead of the
// wall-clock end. The completion alert is disarmed; a paused rest has no
// deadline.
func (t *Timer) Pause() error {
	state, err := t.State()
	if err != nil {
		return err
	}
	if state == nil {
		return fmt.Errorf("no rest in progress")
	}
	if state.IsPaused {
		return fmt.Errorf("rest is already paused")
	}

	now := t.Now()
	if state.Expired(now) {
		return fmt.Errorf("rest has already finished")
	}

	remaining := int(state.Remaining(now) / time.Second)
	if err := t.store.Set(constants.KeyTimerPaused, pausedRecord{RemainingSec: remaining}); err != nil {
		return fmt.Errorf("failed to persist paused timer: %w", err)
	}
	if err := t.store.Remove(constants.KeyTimerEndTime); err != nil {
		logger.Warn("Failed to clear timer end time", "error", err)
	}

	if err := t.notifier.Cancel(constants.NotificationIDCompletion); err != nil {
		logger.Warn("Failed to cancel completion alert", "error", err)
	}
	return nil
}

// Resume restarts a paused countdown from its stored remaining time and
// re-arms the completion alert and the pre-armed reminder for the new end.
func (t *Timer) Resume() error {
	state, err := t.State()
	if err != nil {
		return err
	}
	if state == nil {
		return fmt.Errorf("no rest in progress")
	}
	if !state.IsPaused {
		return fmt.Errorf("rest is not paused")
	}

	end := t.Now().Add(time.Duration(state.RemainingSec) * time.Second)
	if err := t.store.Set(constants.KeyTimerEndTime, end.UnixMilli()); err != nil {
		return fmt.Errorf("failed to persist timer: %w", err)
	}
	if err := t.store.Remove(constants.KeyTimerPaused); err != nil {
		logger.Warn("Failed to clear paused timer state", "error", err)
	}

	if _, err := t.reminders.ScheduleNextFrom(end); err != nil {
		logger.Warn("Failed to re-arm next reminder", "error", err)
	}
	t.armCompletionAlert(end)
	return nil
}

// Cancel abandons the rest: partial credit, state cleared, and the
// reminder re-armed from now. The pre-armed reminder assumed a full
// completion, so it is replaced rather than left in place.
func (t *Timer) Cancel() error {
	state, err := t.State()
	if err != nil {
		return err
	}
	if state == nil {
		return fmt.Errorf("no rest in progress")
	}

	if err := t.notifier.Cancel(constants.NotificationIDCompletion); err != nil {
		logger.Warn("Failed to cancel completion alert", "error", err)
	}

	if err := t.handler.CancelCredit(); err != nil {
		return err
	}

	if _, err := t.reminders.ScheduleNext(); err != nil {
		logger.Warn("Failed to re-arm reminder after cancel", "error", err)
	}
	return nil
}

// Recover is the foreground re-entry check: if a persisted countdown has
// already run out, the completion handler runs exactly once with the
// persisted end time as the completion timestamp, so history reflects
// when the rest actually finished, not when the app was reopened. The
// handler clears the timer state, which is what makes a second call a
// no-op. Returns true when a completion was reconciled.
func (t *Timer) Recover() (bool, error) {
	state, err := t.State()
	if err != nil {
		return false, err
	}
	if state == nil || !state.Expired(t.Now()) {
		return false, nil
	}

	// The alarm may have fired already; cancelling an unarmed id is a
	// no-op.
	if err := t.notifier.Cancel(constants.NotificationIDCompletion); err != nil {
		logger.Warn("Failed to cancel completion alert", "error", err)
	}

	if err := t.handler.Complete(state.EndTime()); err != nil {
		return false, err
	}
	logger.Info("Recovered completed rest", "ended", state.EndTime())
	return true, nil
}

func (t *Timer) armCompletionAlert(end time.Time) {
	settings, err := t.reminders.Settings()
	if err != nil {
		logger.Warn("Failed to load settings for completion alert", "error", err)
		settings = models.DefaultSettings()
	}

	payload := notify.Payload{
		Text:    "Rest complete! Your garden thanks you",
		Screen:  constants.ScreenTimer,
		Vibrate: settings.VibrationEnabled,
	}
	if err := t.notifier.ScheduleAt(constants.NotificationIDCompletion, end, payload); err != nil {
		logger.Error("Failed to arm completion alert", "at", end, "error", err)
	}
}
