// Package clock supplies the tick count used to key launch argument encryption.
package clock

// Source returns host uptime in milliseconds, truncated to 32 bits.
type Source interface {
	Ticks() uint32
}

// Fixed always reports the same tick count.
type Fixed uint32

// Ticks returns the fixed value.
func (f Fixed) Ticks() uint32 { return uint32(f) }

// Uptime reads the host's uptime clock.
type Uptime struct{}

// Ticks returns milliseconds since boot, wrapping at 2^32.
func (Uptime) Ticks() uint32 {
	return uint32(uptimeMillis())
}
