package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/evanmoss/blink/internal/constants"
)

// RestEntry is one completed rest in the append-only history log.
type RestEntry struct {
	ID          string `json:"id"`
	TimestampMs int64  `json:"timestamp_ms"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func NewRestEntry(at time.Time) RestEntry {
	return RestEntry{
		ID:          uuid.NewString(),
		TimestampMs: at.UnixMilli(),
		Date:        at.Format(constants.DateFormat),
		Time:        at.Format(constants.TimeFormat),
	}
}

func (e RestEntry) Timestamp() time.Time {
	return time.UnixMilli(e.TimestampMs)
}

// TrimHistory drops entries older than the rolling retention window.
// Applied on every write so the log never grows past 30 days.
func TrimHistory(entries []RestEntry, now time.Time) []RestEntry {
	cutoff := now.Add(-constants.HistoryWindow)
	trimmed := make([]RestEntry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp().After(cutoff) {
			trimmed = append(trimmed, e)
		}
	}
	return trimmed
}
