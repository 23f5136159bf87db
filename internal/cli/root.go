package cli

import (
	"os"

	"github.com/Skpow1234/oxilauncher/internal/util"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Global flag values shared across all commands.
var (
	flagConfig  string
	flagJSON    bool
	flagQuiet   bool
	flagVerbose bool
)

// NewRootCmd creates the top-level cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "oxilauncher",
		Short:   "Log in to a private lobby server and launch the game client",
		Long:    "oxilauncher authenticates against a lobby server emulator, encodes the session into the client's argument token, and starts the game.",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure zerolog level based on --verbose / --quiet.
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if flagQuiet {
				zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags available to every subcommand.
	pf := root.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "settings file (or OXI_CONFIG env, default ./oxilauncher.yaml)")
	pf.BoolVar(&flagJSON, "json", false, "output results as JSON")
	pf.BoolVar(&flagQuiet, "quiet", false, "minimal output (errors only)")
	pf.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	// Register subcommands.
	root.AddCommand(newLoginCmd())
	root.AddCommand(newRegisterCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newMenuCmd())

	return root
}

// Execute runs the root command and exits with the code mapped from the error.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		p := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagJSON, flagQuiet)
		p.Error(err, "oxilauncher failed")
		os.Exit(util.ExitCodeForError(err))
	}
}
