package cli

import (
	"fmt"

	"github.com/Skpow1234/oxilauncher/internal/auth"
	"github.com/Skpow1234/oxilauncher/internal/clock"
	"github.com/Skpow1234/oxilauncher/internal/gameargs"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var (
		rawArgs      string
		ticks        uint32
		sessionID    string
		lobbyHost    string
		frontierHost string
		gameVersion  string
		lobbyPort    int
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode game arguments into a client token without logging in",
		Long: "Encode an argument string (--args \" /Key =Value ...\") or a session built from --sid, --lobby-host,\n" +
			"--frontier-host and --game-version into the client's argument token. --ticks fixes the key so\n" +
			"the output can be compared with a known-good token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagJSON, flagQuiet)

			plain := rawArgs
			if plain == "" {
				if sessionID == "" || lobbyHost == "" || gameVersion == "" {
					return fmt.Errorf("either --args or --sid, --lobby-host and --game-version are required")
				}
				sess := auth.Session{
					SessionID:    sessionID,
					LobbyHost:    lobbyHost,
					FrontierHost: frontierHost,
					Region:       auth.DefaultRegion,
					MaxExpansion: auth.DefaultMaxExpansion,
					Language:     auth.DefaultLanguage,
				}
				plain = gameargs.Build(sess, gameVersion, lobbyPort).String()
			}

			var src clock.Source = clock.Uptime{}
			if cmd.Flags().Changed("ticks") {
				src = clock.Fixed(ticks)
			}
			enc := &gameargs.Encoder{Clock: src, Logger: printer.Logger}
			token, err := enc.Encode(plain)
			if err != nil {
				return err
			}

			if printer.Mode == OutputJSON {
				return printer.JSON(map[string]any{"plain": plain, "args": token})
			}
			printer.Value(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "rendered argument string to encode")
	cmd.Flags().Uint32Var(&ticks, "ticks", 0, "tick count to key the cipher with (default: host uptime)")
	cmd.Flags().StringVar(&sessionID, "sid", "", "session id")
	cmd.Flags().StringVar(&lobbyHost, "lobby-host", "", "lobby host")
	cmd.Flags().StringVar(&frontierHost, "frontier-host", "", "frontier host")
	cmd.Flags().StringVar(&gameVersion, "game-version", "", "base game version")
	cmd.Flags().IntVar(&lobbyPort, "lobby-port", gameargs.DefaultLobbyPort, "lobby port")

	return cmd
}
