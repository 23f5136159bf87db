package clock

import (
	"time"

	"golang.org/x/sys/windows"
)

// uptimeMillis reads GetTickCount64 through DurationSinceBoot.
func uptimeMillis() uint64 {
	return uint64(windows.DurationSinceBoot() / time.Millisecond)
}
