package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// stdinIsTerminal is swapped out in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readPassword prompts with a masked input on a terminal, otherwise reads one line from in.
func readPassword(in io.Reader, username string) (string, error) {
	if stdinIsTerminal() {
		var pw string
		err := huh.NewInput().
			Title(fmt.Sprintf("Password for %s", username)).
			EchoMode(huh.EchoModePassword).
			Value(&pw).
			Run()
		if err != nil {
			return "", fmt.Errorf("password prompt: %w", err)
		}
		return pw, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
