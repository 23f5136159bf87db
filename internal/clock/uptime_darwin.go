package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

func uptimeMillis() uint64 {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return processMillis()
	}
	boot := time.Unix(tv.Unix())
	return uint64(time.Since(boot) / time.Millisecond)
}
