package config

import "time"

// Terminals larger than this are rendered centered with a border.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 48
)

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Screens
const (
	RestartDelay           = time.Second // Game over screen ignores keys this long
	ShutdownDisplaySeconds = 10.0        // Seconds to show shutdown message before auto-disconnect
)

// Inactivity, for players connected to a server
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Environment variable names.
const (
	EnvTuning   = "TANKFALL_TUNING"
	EnvSeed     = "TANKFALL_SEED"
	EnvLogFile  = "TANKFALL_LOG"
	EnvLogLevel = "TANKFALL_LOG_LEVEL"
)
