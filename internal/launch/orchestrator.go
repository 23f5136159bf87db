// Package launch sequences authentication, argument encoding and the game launch.
package launch

import (
	"context"
	"fmt"

	"github.com/Skpow1234/oxilauncher/internal/audit"
	"github.com/Skpow1234/oxilauncher/internal/auth"
	"github.com/Skpow1234/oxilauncher/internal/gameargs"
	"github.com/Skpow1234/oxilauncher/internal/launcher"
	"github.com/rs/zerolog"
)

// State is a step of a run.
type State int

const (
	StateStart State = iota
	StateAuthenticated
	StateArgsEncoded
	StateExitRequested
	StateRegistered
	StateLaunching
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateStart:         "start",
	StateAuthenticated: "authenticated",
	StateArgsEncoded:   "args_encoded",
	StateExitRequested: "exit_requested",
	StateRegistered:    "registered",
	StateLaunching:     "launching",
	StateDone:          "done",
	StateFailed:        "failed",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	switch s {
	case StateExitRequested, StateRegistered, StateDone, StateFailed:
		return true
	}
	return false
}

// Mode selects the authentication call.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// Authenticator obtains a session from the lobby API.
type Authenticator interface {
	Login(ctx context.Context, creds auth.Credentials) (auth.Session, error)
	Register(ctx context.Context, creds auth.Credentials) (auth.Session, error)
}

// ArgEncoder turns a rendered argument string into the client token.
type ArgEncoder interface {
	Encode(plain string) (string, error)
}

// Request is one run's input.
type Request struct {
	Mode        Mode
	Credentials auth.Credentials
	// ExitOnAuth returns the encoded token instead of launching.
	ExitOnAuth bool
	// SkipLogin stops a registration after the account is created.
	SkipLogin bool
}

// Outcome is the terminal result of a successful run.
type Outcome struct {
	State  State
	Args   string // set for StateExitRequested
	Launch launcher.Result
}

// Orchestrator takes one Run from authentication through launch.
type Orchestrator struct {
	Auth      Authenticator
	Encoder   ArgEncoder
	Launcher  launcher.Launcher
	GameDir   string
	LobbyPort int
	Server    string // recorded in the audit log
	Audit     audit.Logger
	Logger    zerolog.Logger

	// Version reads the game repository version; defaults to gameargs.ReadRepositoryVersion.
	Version func(gameDir string) (string, error)
}

// Run walks the state machine to a terminal state. On failure the returned
// Outcome has StateFailed and err carries the cause.
func (o *Orchestrator) Run(ctx context.Context, req Request) (out Outcome, err error) {
	op := audit.OpLogin
	if req.Mode == ModeRegister {
		op = audit.OpRegister
	}
	defer func() { o.record(op, req, out, err) }()

	state := StateStart
	fail := func(e error) (Outcome, error) {
		o.Logger.Debug().Stringer("from", state).Err(e).Msg("run failed")
		return Outcome{State: StateFailed}, e
	}

	var sess auth.Session
	if req.Mode == ModeRegister {
		sess, err = o.Auth.Register(ctx, req.Credentials)
	} else {
		sess, err = o.Auth.Login(ctx, req.Credentials)
	}
	if err != nil {
		return fail(err)
	}
	state = o.advance(state, StateAuthenticated)

	if req.Mode == ModeRegister && req.SkipLogin {
		return Outcome{State: o.advance(state, StateRegistered)}, nil
	}

	readVersion := o.Version
	if readVersion == nil {
		readVersion = gameargs.ReadRepositoryVersion
	}
	version, err := readVersion(o.GameDir)
	if err != nil {
		return fail(err)
	}
	plain := gameargs.Build(sess, version, o.LobbyPort).String()
	token, err := o.Encoder.Encode(plain)
	if err != nil {
		return fail(err)
	}
	state = o.advance(state, StateArgsEncoded)

	if req.ExitOnAuth {
		return Outcome{State: o.advance(state, StateExitRequested), Args: token}, nil
	}

	state = o.advance(state, StateLaunching)
	res, err := o.Launcher.Launch(ctx, token, o.GameDir)
	if err != nil {
		return fail(err)
	}
	return Outcome{State: o.advance(state, StateDone), Launch: res}, nil
}

func (o *Orchestrator) advance(from, to State) State {
	o.Logger.Debug().Stringer("from", from).Stringer("to", to).Msg("state")
	return to
}

func (o *Orchestrator) record(op string, req Request, out Outcome, err error) {
	if o.Audit == nil {
		return
	}
	e := &audit.Entry{
		Operation: op,
		Username:  req.Credentials.Username,
		Server:    o.Server,
		State:     out.State.String(),
		Success:   err == nil,
	}
	if o.Launcher != nil && out.State == StateDone {
		e.Launcher = o.Launcher.Name()
		e.Extra = map[string]string{"launch_mode": out.Launch.Mode.String()}
	}
	if err != nil {
		e.Error = err.Error()
	}
	if lerr := o.Audit.Log(e); lerr != nil {
		o.Logger.Warn().Err(lerr).Msg("audit log write failed")
	}
}
