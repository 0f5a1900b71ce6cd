package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/models"
	"github.com/evanmoss/blink/internal/notify"
	"github.com/evanmoss/blink/internal/reminder"
	"github.com/evanmoss/blink/internal/storage"
)

type noopNotifier struct{}

func (noopNotifier) ScheduleAt(id string, fireAt time.Time, p notify.Payload) error { return nil }
func (noopNotifier) ScheduleDaily(id string, hour, minute int, p notify.Payload) error {
	return nil
}
func (noopNotifier) Cancel(id string) error { return nil }

func newInitContext(t *testing.T) (*Context, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	return &Context{
		Store:     store,
		Reminders: reminder.New(store, noopNotifier{}),
	}, store
}

func TestInitWakeTimeFlag(t *testing.T) {
	ctx, store := newInitContext(t)

	cmd := &InitCmd{WakeTime: "06:45"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var profile models.OnboardingProfile
	if err := store.Get(constants.KeyOnboardingData, &profile); err != nil {
		t.Fatalf("Get(onboardingData) error = %v", err)
	}
	if profile.WakeHour != 6 || profile.WakeMinute != 45 {
		t.Errorf("persisted wake time = %02d:%02d, want 06:45", profile.WakeHour, profile.WakeMinute)
	}
	if !profile.Completed {
		t.Error("profile not marked completed")
	}

	var settings models.Settings
	if err := store.Get(constants.KeySettings, &settings); err != nil {
		t.Fatalf("Get(settings) error = %v", err)
	}
}

func TestInitRejectsInvalidWakeTime(t *testing.T) {
	tests := []struct {
		name     string
		wakeTime string
	}{
		{"out of range", "25:99"},
		{"no minutes", "7"},
		{"words", "7am"},
		{"negative", "-1:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, store := newInitContext(t)

			cmd := &InitCmd{WakeTime: tt.wakeTime}
			if err := cmd.Run(ctx); err == nil {
				t.Fatalf("Run() with wake time %q succeeded, want error", tt.wakeTime)
			}

			// Nothing reaches the store when the flag is rejected.
			var profile models.OnboardingProfile
			if err := store.Get(constants.KeyOnboardingData, &profile); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Get(onboardingData) error = %v, want ErrNotFound", err)
			}
			var settings models.Settings
			if err := store.Get(constants.KeySettings, &settings); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Get(settings) error = %v, want ErrNotFound", err)
			}
		})
	}
}
