package launcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Skpow1234/oxilauncher/internal/util"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultLutrisSlug is the catalog slug the game must be registered under.
const DefaultLutrisSlug = "ffxivsapphire"

// Lutris hands the launch to a Lutris installation: it rewrites the game's
// stored arguments and asks Lutris to run it.
type Lutris struct {
	Slug      string
	ConfigDir string // Lutris per-game YAML directory
	Runner    Runner
	Logger    zerolog.Logger
}

// NewLutris returns a launcher for slug using ~/.config/lutris/games.
func NewLutris(slug string, logger zerolog.Logger) *Lutris {
	if slug == "" {
		slug = DefaultLutrisSlug
	}
	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".config", "lutris", "games")
	}
	return &Lutris{Slug: slug, ConfigDir: dir, Runner: ExecRunner{}, Logger: logger}
}

func (l *Lutris) Name() string { return NameLutris }

// catalogEntry is one element of `lutris -l -j`.
type catalogEntry struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Launch returns once Lutris has accepted the start command.
func (l *Lutris) Launch(ctx context.Context, args, _ string) (Result, error) {
	if _, err := l.Runner.Output(ctx, "lutris", "--version"); err != nil {
		return Result{}, launchErr(util.ErrDependencyMissing, "lutris must be installed: %v", err)
	}

	id, err := l.gameID(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := l.rewriteArgs(args); err != nil {
		return Result{}, err
	}

	uri := fmt.Sprintf("lutris:rungameid/%d", id)
	l.Logger.Info().Str("uri", uri).Msg("asking lutris to start game")
	if err := l.Runner.Start([]string{"LUTRIS_SKIP_INIT=1"}, "lutris", uri); err != nil {
		return Result{}, fmt.Errorf("%w: start lutris: %w", util.ErrLaunch, err)
	}
	return Result{Mode: ModeAccepted}, nil
}

func (l *Lutris) gameID(ctx context.Context) (int, error) {
	out, err := l.Runner.Output(ctx, "lutris", "-l", "-j")
	if err != nil {
		return 0, launchErr(util.ErrDependencyMissing, "list lutris games: %v", err)
	}
	list := catalogJSON(out)
	if list == nil {
		return 0, fmt.Errorf("%w: no game list in lutris output", util.ErrLaunch)
	}

	var games []catalogEntry
	if err := json.Unmarshal(list, &games); err != nil {
		return 0, fmt.Errorf("%w: parse lutris game list: %w", util.ErrLaunch, err)
	}
	for _, g := range games {
		if g.Slug == l.Slug {
			l.Logger.Debug().Int("id", g.ID).Str("name", g.Name).Msg("found lutris game")
			return g.ID, nil
		}
	}
	return 0, launchErr(util.ErrGameNotConfigured, "no lutris game with slug %q", l.Slug)
}

// catalogJSON returns out from the first line that opens the JSON array.
// Lutris logs ahead of it, and those lines can contain brackets too.
func catalogJSON(out []byte) []byte {
	for off := 0; off < len(out); {
		line := out[off:]
		end := bytes.IndexByte(line, '\n')
		if end >= 0 {
			line = line[:end]
		}
		trimmed := bytes.TrimLeft(line, " \t\r")
		if len(trimmed) > 0 && trimmed[0] == '[' {
			return out[off+len(line)-len(trimmed):]
		}
		if end < 0 {
			break
		}
		off += end + 1
	}
	return nil
}

// rewriteArgs stores args as game.args in every <slug>*.yml config.
// Unreadable files are skipped; at least one must be updated.
func (l *Lutris) rewriteArgs(args string) error {
	paths, err := filepath.Glob(filepath.Join(l.ConfigDir, l.Slug+"*.yml"))
	if err != nil {
		return fmt.Errorf("%w: glob lutris configs: %w", util.ErrLaunch, err)
	}

	updated := 0
	for _, p := range paths {
		ok, err := setGameArgs(p, args)
		if err != nil {
			l.Logger.Warn().Err(err).Str("path", p).Msg("skipping lutris config")
			continue
		}
		if ok {
			updated++
			l.Logger.Debug().Str("path", p).Msg("updated lutris game args")
		}
	}
	if updated == 0 {
		return launchErr(util.ErrGameNotConfigured, "no %s*.yml with a game section in %s", l.Slug, l.ConfigDir)
	}
	return nil
}

// setGameArgs rewrites game.args in one YAML file, keeping everything else.
// It reports false when the file has no game section.
func setGameArgs(path, args string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return false, nil
	}
	game := mappingValue(doc.Content[0], "game")
	if game == nil || game.Kind != yaml.MappingNode {
		return false, nil
	}

	val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: args}
	if cur := mappingValue(game, "args"); cur != nil {
		*cur = *val
	} else {
		game.Content = append(game.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "args"}, val)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
