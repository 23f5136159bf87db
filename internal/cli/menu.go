package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// menuAnswers collects what the guided menu asked for.
type menuAnswers struct {
	action     string
	username   string
	password   string
	exitOnAuth bool
	skipLogin  bool
}

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive mode: guided login or registration",
		Long:  "Walk through logging in, registering an account or reviewing past runs step by step.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var a menuAnswers

			err := huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Log in and play", "login"),
					huh.NewOption("Create an account", "register"),
					huh.NewOption("Show recent runs", "history"),
					huh.NewOption("Show settings", "config"),
					huh.NewOption("Exit", "exit"),
				).
				Value(&a.action).
				Run()
			if err != nil {
				return err
			}

			switch a.action {
			case "login", "register":
				if err := runAccountForm(&a); err != nil {
					return err
				}
			case "exit":
				return nil
			}

			// NewRootCmd resets the global flags.
			next := menuArgs(a, flagConfig)
			root := NewRootCmd()
			root.SetOut(cmd.OutOrStdout())
			root.SetErr(cmd.ErrOrStderr())
			root.SetArgs(next)
			return root.Execute()
		},
	}
	return cmd
}

func runAccountForm(a *menuAnswers) error {
	fields := []huh.Field{
		huh.NewInput().
			Title("Account name").
			Value(&a.username),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&a.password),
		huh.NewConfirm().
			Title("Only print the game arguments?").
			Description("Prints the encoded token instead of starting the game").
			Value(&a.exitOnAuth),
	}
	if a.action == "register" {
		fields = append(fields, huh.NewConfirm().
			Title("Stop after creating the account?").
			Value(&a.skipLogin))
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// menuArgs turns the menu answers into a command line for the root command.
func menuArgs(a menuAnswers, configPath string) []string {
	args := []string{a.action}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	if a.action != "login" && a.action != "register" {
		return args
	}
	if a.username != "" {
		args = append(args, "--username", a.username)
	}
	if a.password != "" {
		args = append(args, "--password", a.password)
	}
	if a.exitOnAuth {
		args = append(args, "--exit-on-auth")
	}
	if a.action == "register" && a.skipLogin {
		args = append(args, "--skip-login")
	}
	return args
}
