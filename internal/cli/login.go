package cli

import (
	"github.com/Skpow1234/oxilauncher/internal/launch"
	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var f authFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and launch the game",
		Long: "Log in to the lobby server, encode the issued session into the client's argument token, and launch the game.\n" +
			"With --exit-on-auth the token is printed on stdout instead and nothing is launched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd, launch.ModeLogin, &f)
		},
	}
	f.bind(cmd)
	return cmd
}
