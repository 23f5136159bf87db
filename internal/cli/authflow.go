package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Skpow1234/oxilauncher/internal/audit"
	"github.com/Skpow1234/oxilauncher/internal/auth"
	"github.com/Skpow1234/oxilauncher/internal/config"
	"github.com/Skpow1234/oxilauncher/internal/gameargs"
	"github.com/Skpow1234/oxilauncher/internal/launch"
	"github.com/Skpow1234/oxilauncher/internal/launcher"
	"github.com/Skpow1234/oxilauncher/internal/util"
	"github.com/spf13/cobra"
)

// Test seams.
var targetOS = runtime.GOOS

var launchRunner launcher.Runner = launcher.ExecRunner{}

// authFlags are the flags shared by login and register.
type authFlags struct {
	username   string
	password   string
	endpoint   string
	exitOnAuth bool
	skipLogin  bool
}

func (f *authFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.username, "username", "", "account name (default: login.username from settings)")
	fl.StringVar(&f.password, "password", "", "account password (prompted when omitted)")
	fl.StringVar(&f.endpoint, "endpoint", "", "API path override")
	fl.BoolVar(&f.exitOnAuth, "exit-on-auth", false, "print the encoded game arguments and exit instead of launching")
}

// runAuth loads settings, authenticates and hands off to the launcher.
func runAuth(cmd *cobra.Command, mode launch.Mode, f *authFlags) error {
	printer := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagJSON, flagQuiet)
	log := printer.Logger

	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	creds := auth.Credentials{Username: f.username, Password: f.password, Endpoint: f.endpoint}
	op := "login"
	if mode == launch.ModeRegister {
		op = "registration"
		if creds.Endpoint == "" {
			creds.Endpoint = settings.Register.Endpoint
		}
	} else {
		if creds.Username == "" {
			creds.Username = settings.Login.Username
		}
		if creds.Endpoint == "" {
			creds.Endpoint = settings.Login.Endpoint
		}
	}
	if creds.Username == "" {
		return fmt.Errorf("%w: --username is required", util.ErrConfig)
	}
	if creds.Password == "" {
		pw, err := readPassword(cmd.InOrStdin(), creds.Username)
		if err != nil {
			return err
		}
		creds.Password = pw
	}
	if creds.Password == "" {
		return fmt.Errorf("%w: password is required", util.ErrConfig)
	}

	lch, err := launcher.Select(settings.Launcher, targetOS, launcher.Options{
		Executable: settings.GameExecutable,
		LutrisSlug: settings.LutrisSlug,
		Runner:     launchRunner,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	history, err := audit.Open(settings.AuditLog)
	if err != nil {
		log.Warn().Err(err).Msg("audit log disabled")
		history = audit.NopLogger{}
	}

	client := auth.New(settings.FrontierScheme, settings.FrontierIP, settings.FrontierPort)
	client.HTTP.Timeout = settings.HTTPTimeout
	client.Logger = log

	orch := &launch.Orchestrator{
		Auth:      client,
		Encoder:   gameargs.NewEncoder(log),
		Launcher:  lch,
		GameDir:   settings.GameDir,
		LobbyPort: settings.LobbyPort,
		Server:    client.BaseURL,
		Audit:     history,
		Logger:    log,
	}

	log.Info().Str("server", client.BaseURL).Str("username", creds.Username).Msgf("sending %s request", op)
	out, err := orch.Run(context.Background(), launch.Request{
		Mode:        mode,
		Credentials: creds,
		ExitOnAuth:  f.exitOnAuth,
		SkipLogin:   f.skipLogin,
	})
	if err != nil {
		return err
	}
	return printOutcome(printer, creds.Username, lch.Name(), out)
}

func printOutcome(p *Printer, username, launcherName string, out launch.Outcome) error {
	if p.Mode == OutputJSON {
		v := map[string]any{"state": out.State.String(), "username": username}
		switch out.State {
		case launch.StateExitRequested:
			v["args"] = out.Args
		case launch.StateDone:
			v["launcher"] = launcherName
			v["launch_mode"] = out.Launch.Mode.String()
		}
		return p.JSON(v)
	}

	switch out.State {
	case launch.StateExitRequested:
		p.Value(out.Args)
	case launch.StateRegistered:
		p.Human("Account %s registered.", username)
	case launch.StateDone:
		if out.Launch.Mode == launcher.ModeAccepted {
			p.Human("Launch accepted by %s; the game is starting.", launcherName)
		} else {
			p.Human("Game exited.")
		}
	}
	return nil
}
