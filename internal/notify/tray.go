package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/evanmoss/blink/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// TrayScheduler talks to the blink tray agent over a loopback webhook.
// The agent owns the actual OS alarms; this side only arms and disarms
// them. Discovery goes through a lockfile the agent writes on startup.
type TrayScheduler struct{}

func NewTrayScheduler() *TrayScheduler {
	return &TrayScheduler{}
}

type alarmRequest struct {
	ID          string `json:"id"`
	Action      string `json:"action"` // "schedule" or "cancel"
	FireAtMs    int64  `json:"fire_at_ms,omitempty"`
	RepeatDaily bool   `json:"repeat_daily,omitempty"`
	Hour        int    `json:"hour,omitempty"`
	Minute      int    `json:"minute,omitempty"`
	Text        string `json:"text,omitempty"`
	Screen      string `json:"screen,omitempty"`
	Vibrate     bool   `json:"vibrate,omitempty"`
	DurationMs  uint32 `json:"duration_ms,omitempty"`
}

func (t *TrayScheduler) ScheduleAt(id string, fireAt time.Time, p Payload) error {
	return t.send(alarmRequest{
		ID:         id,
		Action:     "schedule",
		FireAtMs:   fireAt.UnixMilli(),
		Text:       p.Text,
		Screen:     p.Screen,
		Vibrate:    p.Vibrate,
		DurationMs: constants.NotificationDurationMs,
	})
}

func (t *TrayScheduler) ScheduleDaily(id string, hour, minute int, p Payload) error {
	return t.send(alarmRequest{
		ID:          id,
		Action:      "schedule",
		RepeatDaily: true,
		Hour:        hour,
		Minute:      minute,
		Text:        p.Text,
		Screen:      p.Screen,
		Vibrate:     p.Vibrate,
		DurationMs:  constants.NotificationDurationMs,
	})
}

func (t *TrayScheduler) Cancel(id string) error {
	return t.send(alarmRequest{
		ID:     id,
		Action: "cancel",
	})
}

func (t *TrayScheduler) send(req alarmRequest) error {
	trayConfigPath, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(trayConfigPath, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	return postAlarm(port, secret, req)
}

// GetTrayAppConfigDir returns the configuration directory used by the tray
// agent, honoring a custom lockfile dir from its settings.json.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("blink-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("blink-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), "blink-tray") {
		return "", "", fmt.Errorf("process with PID %d is not blink-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func postAlarm(port string, secret string, req alarmRequest) error {
	url := fmt.Sprintf("http://127.0.0.1:%s/alarms", port)

	jsonData, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Blink-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(httpReq)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	// 404 on cancel means the alarm was never armed; that is a no-op,
	// not a failure.
	if res.StatusCode == http.StatusOK || (req.Action == "cancel" && res.StatusCode == http.StatusNotFound) {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("alarm request failed with status %d: %s", res.StatusCode, string(body))
}
