//go:build !linux && !darwin && !windows

package clock

func uptimeMillis() uint64 {
	return processMillis()
}
