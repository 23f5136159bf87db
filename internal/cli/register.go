package cli

import (
	"github.com/Skpow1234/oxilauncher/internal/launch"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var f authFlags

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account, then launch the game",
		Long: "Create an account on the lobby server. The session returned by the registration is used to launch the game\n" +
			"unless --skip-login is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd, launch.ModeRegister, &f)
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&f.skipLogin, "skip-login", false, "only create the account; do not continue into login and launch")
	return cmd
}
