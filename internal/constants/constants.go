package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "jot"
	DefaultKeyringUser = "api-token"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DayLabelFormat is the long-form header shown above each timeline bucket
	DayLabelFormat = "Monday, January 2, 2006"

	// Timeline window sizing
	DefaultWindowDays = 7
	WindowStep        = 7

	// Toast constants
	ToastDuration = 4 * time.Second

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "jot-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.jotapp.jot-tray"
)

// Session States
const (
	StateTimeline SessionState = iota
	StateDay
	StateThoughts
	StateProfile
	StateCompose
	StateLogin
	StateChangePassword
	StateConfirmation
)
