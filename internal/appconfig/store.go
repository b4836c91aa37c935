package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "ediplug"

var configKeys = []string{"host", "username", "password", "timeout", "format"}

// Config holds the persisted CLI defaults. Every field can be overridden
// by an EDIPLUG_* environment variable or a command line flag.
type Config struct {
	Host     string        `mapstructure:"host" json:"host,omitempty"`
	Username string        `mapstructure:"username" json:"username,omitempty"`
	Password string        `mapstructure:"password" json:"password,omitempty"`
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout,omitempty"`
	Format   string        `mapstructure:"format" json:"format,omitempty"`
}

func (c Config) Normalize() Config {
	out := Config{
		Host:     strings.TrimSpace(c.Host),
		Username: strings.TrimSpace(c.Username),
		Password: c.Password,
		Timeout:  c.Timeout,
		Format:   strings.ToLower(strings.TrimSpace(c.Format)),
	}
	if out.Username == "" {
		// Factory default account on SP-1101W/SP-2101W.
		out.Username = "admin"
	}
	if out.Timeout <= 0 {
		out.Timeout = 5 * time.Second
	}
	if !isValidFormat(out.Format) {
		out.Format = "plain"
	}
	return out
}

func isValidFormat(format string) bool {
	switch format {
	case "plain", "json", "tsv":
		return true
	default:
		return false
	}
}

type Store interface {
	Path() string
	Load() (Config, error)
	Save(cfg Config) error
}

// FileStore reads and writes a YAML config file through viper, merging in
// EDIPLUG_* environment variables on load.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("path is required")
	}
	return &FileStore{path: path}, nil
}

func NewDefaultStore() (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, "ediplug", "config.yaml")}, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}
	return v
}

func (s *FileStore) Load() (Config, error) {
	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; env and defaults still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.Normalize(), nil
}

func (s *FileStore) Save(cfg Config) error {
	cfg = cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("host", cfg.Host)
	v.Set("username", cfg.Username)
	v.Set("password", cfg.Password)
	v.Set("timeout", cfg.Timeout.String())
	v.Set("format", cfg.Format)
	return v.WriteConfigAs(s.path)
}
