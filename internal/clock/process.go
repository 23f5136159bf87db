package clock

import "time"

var processStart = time.Now()

// processMillis is the fallback when the host uptime cannot be read.
func processMillis() uint64 {
	return uint64(time.Since(processStart) / time.Millisecond)
}
