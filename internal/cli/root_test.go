package cli

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{45 * time.Second, "00:45"},
		{20 * time.Minute, "20:00"},
		{19*time.Minute + 59*time.Second, "19:59"},
		{90 * time.Minute, "1:30:00"},
		{2*time.Hour + 5*time.Second, "2:00:05"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %s, want %s", tt.d, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "later today",
			clock: "18:30",
			want:  time.Date(2026, time.March, 10, 18, 30, 0, 0, time.UTC),
		},
		{
			name:  "already passed rolls to tomorrow",
			clock: "09:00",
			want:  time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "exactly now rolls to tomorrow",
			clock: "14:00",
			want:  time.Date(2026, time.March, 11, 14, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage input",
			clock:   "half past nine",
			wantErr: true,
		},
		{
			name:    "out of range",
			clock:   "25:99",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.clock, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.clock, err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.want) {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.clock, got, tt.want)
			}
		})
	}
}
