// Package notify abstracts the platform alarm facility. The OS side is a
// black box: delivery is at-least-once and possibly never, since a cancel
// can race with a fire. Correctness after a missed or duplicated alarm
// rests on the timer's idempotent recovery, not on this package.
package notify

import "time"

// Payload is what an armed alarm carries back to the user: the alert text
// and a screen identifier so the host UI can route a tap.
type Payload struct {
	Text    string `json:"text"`
	Screen  string `json:"screen,omitempty"`
	Vibrate bool   `json:"vibrate,omitempty"`
}

// Scheduler arms and cancels alarms by id. Scheduling under an id that is
// already armed replaces the previous occupant; cancelling an unknown id
// is a no-op.
type Scheduler interface {
	// ScheduleAt arms a one-shot alert at the given instant.
	ScheduleAt(id string, fireAt time.Time, p Payload) error
	// ScheduleDaily arms a daily-repeating alert at the given local time.
	ScheduleDaily(id string, hour, minute int, p Payload) error
	// Cancel disarms the alarm under id, if any.
	Cancel(id string) error
}
