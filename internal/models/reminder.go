package models

import (
	"time"

	"github.com/evanmoss/blink/internal/constants"
)

// NextReminder represents the single upcoming reminder notification.
// Scheduling a new reminder always supersedes the prior one under the same
// id; reminders never accumulate.
type NextReminder struct {
	ID            string `json:"id"`
	TimeMs        int64  `json:"time_ms"`
	FormattedTime string `json:"formatted_time"`
	Date          string `json:"date"`
}

func NewNextReminder(id string, at time.Time) NextReminder {
	return NextReminder{
		ID:            id,
		TimeMs:        at.UnixMilli(),
		FormattedTime: at.Format(constants.TimeFormat),
		Date:          at.Format(constants.DateFormat),
	}
}

func (r NextReminder) Time() time.Time {
	return time.UnixMilli(r.TimeMs)
}
