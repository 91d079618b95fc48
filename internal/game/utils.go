package game

import (
	"fmt"
	"time"
)

// frameTime converts a frame count into wall time at tps frames per second.
func frameTime(frames, tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(tps)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
