package constants

import "time"

const (
	AppName           = "tripboard"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/tripboard/config.yaml"
	DefaultStorePath  = "~/.config/tripboard/state.db"

	// DateFormat is the calendar date format used by trip documents (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the agenda time format (HH:MM)
	TimeFormat = "15:04"

	// ClockFormat is the format of the live clock readout
	ClockFormat = "15:04:05"

	// RangeSeparator splits "HH:MM - HH:MM" agenda times
	RangeSeparator = " - "

	// CompletionKeyPrefix prefixes every completion flag key
	CompletionKeyPrefix = "agenda_"

	// Placeholder is rendered for missing optional fields
	Placeholder = "-"

	DefaultTimezone    = "Asia/Bangkok"
	DefaultLocale      = "th"
	DefaultExportDir   = "."
	DefaultExportScale = 2
	DefaultExportWidth = 480

	// Gesture constants, in drag units
	SwipeThreshold = 40
	SwipeMaxOffset = 50
	UnitsPerCell   = 8

	TickInterval      = time.Second
	SpringFrameDelay  = 16 * time.Millisecond
	ExportTimeout     = 30 * time.Second
	LockfileName      = "tripboard.lock"
	SnapshotReadyAttr = `[data-ready="true"]`
)
