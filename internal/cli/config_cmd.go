package cli

import (
	"github.com/Skpow1234/oxilauncher/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective settings and precedence",
		Long: "Show the effective settings used by oxilauncher.\n\n" +
			"Precedence (highest wins):\n" +
			"  1. CLI flags (--username, --endpoint)\n" +
			"  2. Environment variables (OXI_GAME_DIR, OXI_FRONTIER_IP, OXI_LOGIN_USERNAME, ...)\n" +
			"  3. Settings file (from --config, OXI_CONFIG, or ./oxilauncher.yaml)\n" +
			"  4. Built-in defaults\n\n" +
			"A missing settings file is created from a template and the command exits with status 3.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagJSON, flagQuiet)
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}

			switch printer.Mode {
			case OutputJSON:
				return printer.JSON(cfg)
			default:
				printer.Human("Effective settings (%s):", config.ResolvePath(flagConfig))
				printer.Human("  game_dir:          %q", cfg.GameDir)
				printer.Human("  frontier:          %s://%s:%d", cfg.FrontierScheme, cfg.FrontierIP, cfg.FrontierPort)
				printer.Human("  lobby_port:        %d", cfg.LobbyPort)
				printer.Human("  http_timeout:      %s", cfg.HTTPTimeout)
				printer.Human("  launcher:          %s", cfg.Launcher)
				printer.Human("  game_executable:   %q", cfg.GameExecutable)
				printer.Human("  lutris_slug:       %s", cfg.LutrisSlug)
				printer.Human("  audit_log:         %q", cfg.AuditLog)
				printer.Human("  login.username:    %q", cfg.Login.Username)
				printer.Human("  login.endpoint:    %s", cfg.Login.Endpoint)
				printer.Human("  register.endpoint: %s", cfg.Register.Endpoint)
				if err := cfg.Validate(); err != nil {
					printer.Human("Not ready: %v", err)
				}
			}
			return nil
		},
	}
	return cmd
}
