package cli

import (
	"fmt"
	"time"

	"github.com/Skpow1234/oxilauncher/internal/audit"
	"github.com/Skpow1234/oxilauncher/internal/config"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		logPath   string
		since     string
		operation string
		username  string
		failed    bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past login and launch runs",
		Long:  "Read the audit log (audit_log in settings, or --log) and list recorded runs. Filter with --since (RFC3339, 2006-01-02 or a duration such as 24h), --operation, --user and --failed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagJSON, flagQuiet)

			if logPath == "" {
				cfg, err := config.Load(flagConfig)
				if err != nil {
					return err
				}
				logPath = cfg.AuditLog
			}
			if logPath == "" {
				return fmt.Errorf("audit log path required: set audit_log in settings or pass --log")
			}

			filter := audit.Filter{Operation: operation, Username: username, Failed: failed}
			if since != "" {
				t, err := parseSince(since, time.Now())
				if err != nil {
					return fmt.Errorf("--since: %w", err)
				}
				filter.Since = &t
			}

			entries, err := audit.ReadLog(logPath, &filter)
			if err != nil {
				return fmt.Errorf("read audit log: %w", err)
			}

			if printer.Mode == OutputJSON {
				if entries == nil {
					entries = []audit.Entry{}
				}
				return printer.JSON(entries)
			}
			for _, e := range entries {
				status := "ok"
				if !e.Success {
					status = "FAILED: " + e.Error
				}
				printer.Human("%s  %-8s  %-12s  %-14s  %s", e.Timestamp, e.Operation, e.Username, e.State, status)
			}
			if len(entries) == 0 {
				printer.Human("No matching runs.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "audit log file (default: audit_log from settings)")
	cmd.Flags().StringVar(&since, "since", "", "include runs on or after this time")
	cmd.Flags().StringVar(&operation, "operation", "", "filter by operation (login, register)")
	cmd.Flags().StringVar(&username, "user", "", "filter by account name")
	cmd.Flags().BoolVar(&failed, "failed", false, "only failed runs")

	return cmd
}

func parseSince(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(-d), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (use RFC3339, 2006-01-02 or a duration)", s)
}
