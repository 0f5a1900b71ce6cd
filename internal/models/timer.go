package models

import "time"

// TimerState is the persisted view of the single rest countdown. A running
// timer stores its absolute end time; a paused timer stores remaining
// seconds only, never a wall-clock end.
type TimerState struct {
	EndTimeMs    int64 `json:"end_time_ms"`
	IsPaused     bool  `json:"is_paused"`
	RemainingSec int   `json:"remaining_sec"`
}

func (ts TimerState) EndTime() time.Time {
	return time.UnixMilli(ts.EndTimeMs)
}

// Remaining recomputes the time left from the wall clock. It is never
// derived from accumulated ticks: ticks may be skipped entirely while the
// process is suspended.
func (ts TimerState) Remaining(now time.Time) time.Duration {
	if ts.IsPaused {
		return time.Duration(ts.RemainingSec) * time.Second
	}
	remaining := ts.EndTime().Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether a running timer's end time has already passed.
// Paused timers never expire; they hold remaining time, not a deadline.
func (ts TimerState) Expired(now time.Time) bool {
	if ts.IsPaused {
		return false
	}
	return !ts.EndTime().After(now)
}
