package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Skpow1234/oxilauncher/internal/util"
)

func TestConfigCmd_JSON(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "oxilauncher.yaml")
	content := []byte("game_dir: /games/ffxiv\nfrontier_ip: 10.0.0.5\nfrontier_port: 80\nlobby_port: 54995\n")
	if err := os.WriteFile(cfgPath, content, 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "config", "--config", cfgPath, "--json")
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json %q: %v", out, err)
	}
	if got["frontier_ip"] != "10.0.0.5" || got["lobby_port"] != float64(54995) {
		t.Errorf("settings: %v", got)
	}
	if got["launcher"] != "auto" || got["frontier_scheme"] != "http" {
		t.Errorf("defaults not applied: %v", got)
	}
}

func TestConfigCmd_NotReady(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "oxilauncher.yaml")
	os.WriteFile(cfgPath, []byte("game_dir: /games/ffxiv\n"), 0o600)

	out, err := execute(t, "", "config", "--config", cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Not ready") || !strings.Contains(out, "frontier_ip") {
		t.Errorf("output: %q", out)
	}
}

func TestConfigCmd_CreatesTemplate(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "oxilauncher.yaml")

	_, err := execute(t, "", "config", "--config", cfgPath)
	if util.ExitCodeForError(err) != util.ExitConfigCreated {
		t.Fatalf("expected config-created, got %v", err)
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "frontier_ip") {
		t.Errorf("template missing keys:\n%s", data)
	}
}
