package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func statusLine(waves int, frames uint64, elapsed time.Duration, paused bool) string {
	state := "Space: pause"
	if paused {
		state = "Paused - Space: resume"
	}
	return fmt.Sprintf("%d waves | frame %d | %s | %s, R: reseed, Esc/Q: quit",
		waves, frames, formatDuration(elapsed), state)
}
