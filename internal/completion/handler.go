// Package completion records finished rests: history, stats, energy
// rewards and garden unlocks. It is the sole writer of restHistory, stats
// and lastCompletionTime.
package completion

import (
	"errors"
	"fmt"
	"time"

	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/events"
	"github.com/evanmoss/blink/internal/logger"
	"github.com/evanmoss/blink/internal/models"
	"github.com/evanmoss/blink/internal/storage"
)

type Handler struct {
	store storage.Provider
	bus   *events.Bus

	// Now is the clock; swapped out in tests.
	Now func() time.Time
}

func New(store storage.Provider, bus *events.Bus) *Handler {
	return &Handler{
		store: store,
		bus:   bus,
		Now:   time.Now,
	}
}

// Complete records a naturally finished rest at completedAt. The caller
// passes the persisted end time, not "now": a rest recovered long after
// backgrounding is logged at the instant it actually finished. Clearing
// the timer state here is what makes recovery idempotent; a second pass
// finds no state and does nothing. The next reminder is NOT re-armed: it
// was pre-armed when the timer started.
func (h *Handler) Complete(completedAt time.Time) error {
	now := h.Now()

	history := h.loadHistory()
	history = append(history, models.NewRestEntry(completedAt))
	history = models.TrimHistory(history, now)
	if err := h.store.Set(constants.KeyRestHistory, history); err != nil {
		logger.Warn("Failed to persist rest history", "error", err)
	}

	stats := h.loadStats()
	stats.TotalRests++
	stats.Energy += constants.FullRestReward
	stats.StreakDays = models.Streak(history, now)
	if err := h.store.Set(constants.KeyStats, stats); err != nil {
		logger.Warn("Failed to persist stats", "error", err)
	}

	if err := h.store.Set(constants.KeyLastCompletionTime, completedAt.UnixMilli()); err != nil {
		logger.Warn("Failed to persist last completion time", "error", err)
	}

	h.clearTimerState()

	h.bus.PublishReward(events.RewardEvent{Amount: constants.FullRestReward})
	// Totals move by exactly one, so at most one threshold can be crossed.
	for _, threshold := range constants.UnlockThresholds {
		if stats.TotalRests == threshold {
			h.bus.PublishUnlock(events.UnlockEvent{Threshold: threshold, TotalRests: stats.TotalRests})
			break
		}
	}

	return nil
}

// CancelCredit grants the reduced reward for an interrupted rest and
// clears the timer state. No history entry is logged and totals do not
// move: only completed rests count. Re-arming the reminder is the timer's
// cancel step, since the pre-armed reminder assumed full completion.
func (h *Handler) CancelCredit() error {
	stats := h.loadStats()
	stats.Energy += constants.PartialRestReward
	if err := h.store.Set(constants.KeyStats, stats); err != nil {
		logger.Warn("Failed to persist stats", "error", err)
	}

	h.clearTimerState()

	h.bus.PublishReward(events.RewardEvent{Amount: constants.PartialRestReward, Partial: true})
	return nil
}

// DeleteEntry removes a history entry and walks the rest total back by
// one, never below zero.
func (h *Handler) DeleteEntry(id string) error {
	history := h.loadHistory()
	kept := make([]models.RestEntry, 0, len(history))
	found := false
	for _, e := range history {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("history entry not found: %s", id)
	}

	if err := h.store.Set(constants.KeyRestHistory, kept); err != nil {
		return fmt.Errorf("failed to persist rest history: %w", err)
	}

	stats := h.loadStats()
	if stats.TotalRests > 0 {
		stats.TotalRests--
	}
	stats.StreakDays = models.Streak(kept, h.Now())
	if err := h.store.Set(constants.KeyStats, stats); err != nil {
		logger.Warn("Failed to persist stats", "error", err)
	}
	return nil
}

// LogWakeup records a wake-up confirmation.
func (h *Handler) LogWakeup() error {
	stats := h.loadStats()
	stats.TotalWakeups++
	if err := h.store.Set(constants.KeyStats, stats); err != nil {
		return fmt.Errorf("failed to persist stats: %w", err)
	}
	return nil
}

// History returns the logged rests, newest last.
func (h *Handler) History() []models.RestEntry {
	return h.loadHistory()
}

// Stats returns the current totals.
func (h *Handler) Stats() models.Stats {
	return h.loadStats()
}

func (h *Handler) loadHistory() []models.RestEntry {
	var history []models.RestEntry
	if err := h.store.Get(constants.KeyRestHistory, &history); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to load rest history", "error", err)
		}
		return nil
	}
	return history
}

func (h *Handler) loadStats() models.Stats {
	var stats models.Stats
	if err := h.store.Get(constants.KeyStats, &stats); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to load stats", "error", err)
		}
		return models.Stats{}
	}
	return stats
}

func (h *Handler) clearTimerState() {
	if err := h.store.Remove(constants.KeyTimerEndTime); err != nil {
		logger.Warn("Failed to clear timer end time", "error", err)
	}
	if err := h.store.Remove(constants.KeyTimerPaused); err != nil {
		logger.Warn("Failed to clear paused timer state", "error", err)
	}
}
