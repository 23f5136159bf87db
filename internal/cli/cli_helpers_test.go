package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Skpow1234/oxilauncher/internal/gameargs"
	"github.com/Skpow1234/oxilauncher/internal/launcher"
)

// recordingRunner stands in for os/exec in command tests.
type recordingRunner struct {
	runs   [][]string
	starts [][]string
}

func (r *recordingRunner) Output(context.Context, string, ...string) ([]byte, error) {
	return nil, fmt.Errorf("not installed")
}

func (r *recordingRunner) Run(_, name string, args ...string) (int, error) {
	r.runs = append(r.runs, append([]string{name}, args...))
	return 0, nil
}

func (r *recordingRunner) Start(_ []string, name string, args ...string) error {
	r.starts = append(r.starts, append([]string{name}, args...))
	return nil
}

// lobbyServer fakes the lobby API. status 0 means 200 with a session.
func lobbyServer(t *testing.T, status int, gotPass *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Pass     string `json:"pass"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if gotPass != nil {
			*gotPass = body.Pass
		}
		if status != 0 {
			w.WriteHeader(status)
			return
		}
		w.Write([]byte(`{"sId":"0123456789abcdef","lobbyHost":"127.0.0.2","frontierHost":"127.0.0.3"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setupEnv writes a game dir and a settings file pointing at srv.
func setupEnv(t *testing.T, srv *httptest.Server, extra string) (cfgPath, gameDir string, runner *recordingRunner) {
	t.Helper()
	dir := t.TempDir()
	gameDir = filepath.Join(dir, "ffxiv")
	if err := os.MkdirAll(filepath.Join(gameDir, "game"), 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(gameDir, gameargs.BaseVersionFile), []byte("2016.01.07.0000.0000"), 0o644)
	os.WriteFile(filepath.Join(gameDir, launcher.DefaultExecutable), []byte("MZ"), 0o755)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	host, port, _ := net.SplitHostPort(u.Host)
	cfgPath = filepath.Join(dir, "oxilauncher.yaml")
	content := fmt.Sprintf("game_dir: %s\nfrontier_ip: %s\nfrontier_port: %s\nfrontier_scheme: http\nlauncher: direct\n%s",
		gameDir, host, port, extra)
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	runner = &recordingRunner{}
	prevRunner, prevOS, prevTTY := launchRunner, targetOS, stdinIsTerminal
	launchRunner, targetOS = runner, "windows"
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() {
		launchRunner, targetOS, stdinIsTerminal = prevRunner, prevOS, prevTTY
	})
	return cfgPath, gameDir, runner
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func isToken(s string) bool {
	return strings.HasPrefix(s, gameargs.TokenPrefix) && strings.HasSuffix(s, gameargs.TokenSuffix) &&
		len(s) > len(gameargs.TokenPrefix)+len(gameargs.TokenSuffix)+1
}
