package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Skpow1234/oxilauncher/internal/auth"
	"github.com/Skpow1234/oxilauncher/internal/gameargs"
	"github.com/Skpow1234/oxilauncher/internal/launcher"
	"github.com/Skpow1234/oxilauncher/internal/util"
	"github.com/spf13/viper"
)

const (
	// EnvConfigPath is the environment variable for config file path.
	EnvConfigPath = "OXI_CONFIG"
	// EnvPrefix prefixes environment overrides, e.g. OXI_GAME_DIR.
	EnvPrefix = "OXI"
	// DefaultPath is used when neither --config nor OXI_CONFIG is set.
	DefaultPath = "oxilauncher.yaml"
)

// Settings is the merged configuration (defaults + file + environment).
type Settings struct {
	GameDir        string        `mapstructure:"game_dir" json:"game_dir"`
	FrontierIP     string        `mapstructure:"frontier_ip" json:"frontier_ip"`
	FrontierPort   int           `mapstructure:"frontier_port" json:"frontier_port"`
	FrontierScheme string        `mapstructure:"frontier_scheme" json:"frontier_scheme"`
	LobbyPort      int           `mapstructure:"lobby_port" json:"lobby_port"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout" json:"http_timeout"`
	Launcher       string        `mapstructure:"launcher" json:"launcher"`
	GameExecutable string        `mapstructure:"game_executable" json:"game_executable"`
	LutrisSlug     string        `mapstructure:"lutris_slug" json:"lutris_slug"`
	AuditLog       string        `mapstructure:"audit_log" json:"audit_log"`
	Login          Login         `mapstructure:"login" json:"login"`
	Register       Register      `mapstructure:"register" json:"register"`
}

// Login holds file-level defaults for the login command.
type Login struct {
	Username string `mapstructure:"username" json:"username"`
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
}

// Register holds file-level defaults for the register command.
type Register struct {
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
}

// Defaults returns the built-in settings. Connection fields are left empty
// and must be filled in by the user.
func Defaults() Settings {
	return Settings{
		FrontierScheme: "http",
		LobbyPort:      gameargs.DefaultLobbyPort,
		HTTPTimeout:    auth.DefaultTimeout,
		Launcher:       launcher.NameAuto,
		GameExecutable: launcher.DefaultExecutable,
		LutrisSlug:     launcher.DefaultLutrisSlug,
		Login:          Login{Endpoint: auth.DefaultLoginEndpoint},
		Register:       Register{Endpoint: auth.DefaultRegisterEndpoint},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("game_dir", d.GameDir)
	v.SetDefault("frontier_ip", d.FrontierIP)
	v.SetDefault("frontier_port", d.FrontierPort)
	v.SetDefault("frontier_scheme", d.FrontierScheme)
	v.SetDefault("lobby_port", d.LobbyPort)
	v.SetDefault("http_timeout", d.HTTPTimeout.String())
	v.SetDefault("launcher", d.Launcher)
	v.SetDefault("game_executable", d.GameExecutable)
	v.SetDefault("lutris_slug", d.LutrisSlug)
	v.SetDefault("audit_log", d.AuditLog)
	v.SetDefault("login.username", d.Login.Username)
	v.SetDefault("login.endpoint", d.Login.Endpoint)
	v.SetDefault("register.endpoint", d.Register.Endpoint)
}

// ResolvePath picks the config file: explicit path, then OXI_CONFIG, then ./oxilauncher.yaml.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads settings from path (see ResolvePath) with OXI_* environment overrides.
// When the file does not exist a template is written there and ErrConfigCreated is returned.
func Load(path string) (*Settings, error) {
	path = ResolvePath(path)

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if (errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist)) ||
			errors.As(err, new(viper.ConfigFileNotFoundError)) {
			if werr := WriteTemplate(path); werr != nil {
				return nil, fmt.Errorf("%w: write template %s: %w", util.ErrConfig, path, werr)
			}
			return nil, fmt.Errorf("%w: %s", util.ErrConfigCreated, path)
		}
		return nil, fmt.Errorf("%w: read config %s: %w", util.ErrConfig, path, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: decode config %s: %w", util.ErrConfig, path, err)
	}
	return &s, nil
}

// WriteTemplate writes a config file holding every key at its default value.
// An existing file is left alone.
func WriteTemplate(path string) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	return v.SafeWriteConfigAs(path)
}

// Validate checks the fields required to reach the server and find the game.
func (s *Settings) Validate() error {
	var missing []string
	if s.GameDir == "" {
		missing = append(missing, "game_dir")
	}
	if s.FrontierIP == "" {
		missing = append(missing, "frontier_ip")
	}
	if s.FrontierPort == 0 {
		missing = append(missing, "frontier_port")
	}
	if s.FrontierScheme == "" {
		missing = append(missing, "frontier_scheme")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", util.ErrConfig, strings.Join(missing, ", "))
	}
	if s.FrontierPort < 0 || s.FrontierPort > 65535 {
		return fmt.Errorf("%w: frontier_port %d out of range", util.ErrConfig, s.FrontierPort)
	}
	if s.LobbyPort < 0 || s.LobbyPort > 65535 {
		return fmt.Errorf("%w: lobby_port %d out of range", util.ErrConfig, s.LobbyPort)
	}
	return nil
}
