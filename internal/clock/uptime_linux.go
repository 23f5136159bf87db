package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

func uptimeMillis() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts); err == nil {
		return uint64(ts.Nano() / int64(time.Millisecond))
	}
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return processMillis()
	}
	return uint64(info.Uptime) * 1000
}
