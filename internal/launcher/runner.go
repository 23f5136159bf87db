package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner executes external programs.
type Runner interface {
	// Output runs name and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs name in dir and waits. A non-zero exit is a code, not an error.
	Run(dir, name string, args ...string) (int, error)
	// Start starts name with extra environment and does not wait for it.
	Start(env []string, name string, args ...string) error
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (ExecRunner) Run(dir, name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}

func (ExecRunner) Start(env []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), env...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
