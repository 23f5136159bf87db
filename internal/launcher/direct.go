package launcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Skpow1234/oxilauncher/internal/util"
	"github.com/rs/zerolog"
)

// DefaultExecutable is the client binary, relative to the game directory.
var DefaultExecutable = filepath.Join("game", "ffxiv_dx11.exe")

// Direct runs the game executable itself and waits for it to exit.
type Direct struct {
	Executable string
	Runner     Runner
	Logger     zerolog.Logger
}

// NewDirect returns a Direct launcher for the default executable.
func NewDirect(logger zerolog.Logger) *Direct {
	return &Direct{Executable: DefaultExecutable, Runner: ExecRunner{}, Logger: logger}
}

func (d *Direct) Name() string { return NameDirect }

// ExecutablePath resolves the executable under gameDir.
func (d *Direct) ExecutablePath(gameDir string) string {
	exe := d.Executable
	if exe == "" {
		exe = DefaultExecutable
	}
	if filepath.IsAbs(exe) {
		return exe
	}
	return filepath.Join(gameDir, exe)
}

// Launch starts the executable with args as its only argument and waits.
func (d *Direct) Launch(_ context.Context, args, gameDir string) (Result, error) {
	exe := d.ExecutablePath(gameDir)
	info, err := os.Stat(exe)
	if err != nil || info.IsDir() {
		return Result{}, launchErr(util.ErrExecutableNotFound, "%s", exe)
	}

	d.Logger.Info().Str("exe", exe).Msg("starting game")
	code, err := d.Runner.Run(filepath.Dir(exe), exe, args)
	if err != nil {
		return Result{}, fmt.Errorf("%w: start %s: %w", util.ErrLaunch, exe, err)
	}
	if code != 0 {
		return Result{Mode: ModeAwaited, ExitCode: code}, &AbnormalExitError{Code: code}
	}
	d.Logger.Info().Msg("game exited")
	return Result{Mode: ModeAwaited}, nil
}
