// Package launcher starts the game client with an encoded argument token.
package launcher

import (
	"context"
	"fmt"

	"github.com/Skpow1234/oxilauncher/internal/util"
)

// Mode says how far a launch was followed.
type Mode int

const (
	// ModeAwaited means the game process ran and exited.
	ModeAwaited Mode = iota
	// ModeAccepted means a front end accepted the start command; the game
	// itself was not waited on and may still be starting.
	ModeAccepted
)

func (m Mode) String() string {
	switch m {
	case ModeAwaited:
		return "awaited"
	case ModeAccepted:
		return "accepted"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Result describes a successful launch.
type Result struct {
	Mode     Mode
	ExitCode int
}

// Launcher starts the game. args is an opaque token and must be passed on unchanged.
type Launcher interface {
	Name() string
	Launch(ctx context.Context, args, gameDir string) (Result, error)
}

// AbnormalExitError reports a game process that exited non-zero.
type AbnormalExitError struct {
	Code int
}

func (e *AbnormalExitError) Error() string {
	return fmt.Sprintf("%s: exit code %d", util.ErrAbnormalExit, e.Code)
}

// Unwrap lets errors.Is match ErrAbnormalExit and ErrLaunch.
func (e *AbnormalExitError) Unwrap() []error {
	return []error{util.ErrAbnormalExit, util.ErrLaunch}
}

// launchErr tags err with ErrLaunch and a more specific sentinel.
func launchErr(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", util.ErrLaunch, kind, fmt.Sprintf(format, args...))
}
