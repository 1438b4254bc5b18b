package constants

// SessionState represents the current state of the TUI application
type SessionState int

// OutputType identifies which feature produced a recent output
type OutputType string

// Difficulty is the question-bank difficulty level
type Difficulty string

const (
	AppName            = "campusbuddy"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/campusbuddy/campusbuddy.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"
	// DayLabelFormat renders plan days in exports, e.g. "Mon, Jan 2"
	DayLabelFormat = "Mon, Jan 2"
	// TimestampFormat matches JavaScript's Date.toISOString
	TimestampFormat   = "2006-01-02T15:04:05.000Z07:00"
	DisplayTimeFormat = "2006-01-02 15:04"

	// Config env vars
	EnvConfig = "CAMPUSBUDDY_CONFIG"
	EnvDebug  = "CAMPUSBUDDY_DEBUG"

	// Special --config values
	ConfigMemory  = ":memory:"
	ConfigKeyring = "keyring"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "campusbuddy-"

	// Lockfile
	LockfileName = "campusbuddy.lock"

	// Output types
	OutputSummary   OutputType = "summary"
	OutputQuestions OutputType = "questions"
	OutputPractical OutputType = "practical"

	// Difficulty levels
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Session States. The first TabCount values are the top-level tabs, in order.
const (
	StateHome SessionState = iota
	StateRevision
	StateCGPA
	StateAttendance
	StateHistory
	StateAddSubject
	StateAddAttendance
	StateNewPlan
	StateConfirmClear
)

// TabCount is the number of top-level tabs in the TUI.
const TabCount = 5
