package models

import (
	"time"

	"github.com/evanmoss/blink/internal/constants"
)

// Stats accumulates rest totals and the energy balance driving the garden.
// Counters move by exactly one per completion and never drop below zero.
type Stats struct {
	TotalRests   int `json:"total_rests"`
	TotalWakeups int `json:"total_wakeups"`
	StreakDays   int `json:"streak_days"`
	Energy       int `json:"energy"`
}

// Streak returns the number of consecutive calendar days, ending today or
// yesterday, that have at least one logged rest. A rest earlier today
// extends yesterday's run; a day with no rest before yesterday breaks it.
func Streak(entries []RestEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Date] = true
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !days[day.Format(constants.DateFormat)] {
		// No rest yet today; the streak may still be alive from yesterday.
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day.Format(constants.DateFormat)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
