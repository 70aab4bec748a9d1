package model

// Centralized icons for the doctor UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconOK       = "·" // Step fine (quiet dot to reduce noise)
	IconAccepted = "✔" // Winning symlink candidate
	IconRejected = "✗" // Rejected or broken candidate
	IconSymlink  = "→" // Right arrow (symlink)
	IconWarning  = "≈" // Plausible but unmarked candidate
	IconComputed = "＋" // Target derived by path arithmetic
)

// Version can be overridden via -ldflags "-X cargowrap/internal/model.Version=1.0.0"
var Version = "dev"
