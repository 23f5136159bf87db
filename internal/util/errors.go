package util

import "errors"

// Exit codes for automation-friendly CLI usage.
const (
	ExitSuccess          = 0
	ExitGenericError     = 1
	ExitConfigInvalid    = 2
	ExitConfigCreated    = 3
	ExitAuthFailed       = 10
	ExitRepositoryRead   = 11
	ExitEncryptionFailed = 12
	ExitLaunchFailed     = 13
)

// Sentinel errors used across the application.
var (
	ErrConfig        = errors.New("invalid configuration")
	ErrConfigCreated = errors.New("configuration file created, fill it in and run again")

	ErrAuth              = errors.New("authentication failed")
	ErrAuthRejected      = errors.New("authentication rejected by server")
	ErrMalformedResponse = errors.New("malformed authentication response")

	ErrRepositoryRead = errors.New("cannot read game repository version")
	ErrEncryption     = errors.New("argument encryption failed")

	ErrLaunch             = errors.New("launch failed")
	ErrExecutableNotFound = errors.New("game executable not found")
	ErrDependencyMissing  = errors.New("launcher dependency missing")
	ErrGameNotConfigured  = errors.New("game not configured in launcher")
	ErrAbnormalExit       = errors.New("game exited abnormally")
)

// ExitCodeForError maps a sentinel error to its CLI exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfigCreated):
		return ExitConfigCreated
	case errors.Is(err, ErrConfig):
		return ExitConfigInvalid
	case errors.Is(err, ErrAuth):
		return ExitAuthFailed
	case errors.Is(err, ErrRepositoryRead):
		return ExitRepositoryRead
	case errors.Is(err, ErrEncryption):
		return ExitEncryptionFailed
	case errors.Is(err, ErrLaunch):
		return ExitLaunchFailed
	default:
		return ExitGenericError
	}
}
