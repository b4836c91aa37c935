package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andreipop/ediplug/internal/appconfig"
)

var newConfigStore = func() (appconfig.Store, error) { return appconfig.NewDefaultStore() }

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage local CLI defaults",
		Long:  "Stores small, local defaults under your user config directory (e.g. ~/.config/ediplug/config.yaml). Keys: host, username, password, timeout, format.",
	}
	cmd.AddCommand(newConfigGetCmd(flags))
	cmd.AddCommand(newConfigSetCmd(flags))
	cmd.AddCommand(newConfigUnsetCmd(flags))
	cmd.AddCommand(newConfigPathCmd(flags))
	return cmd
}

func newConfigPathCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newConfigStore()
			if err != nil {
				return err
			}
			if isJSON(flags) {
				return writeJSON(cmd, map[string]any{"path": s.Path()})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.Path())
			return nil
		},
	}
}

func newConfigGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Get current config (or one key)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newConfigStore()
			if err != nil {
				return err
			}
			cfg, err := s.Load()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if isJSON(flags) {
					return writeJSON(cmd, cfg)
				}
				printConfigPlain(cmd, cfg)
				return nil
			}

			key := strings.TrimSpace(args[0])
			val, ok := getConfigKey(cfg, key)
			if !ok {
				return errors.New("unknown key: " + key)
			}
			if isJSON(flags) {
				return writeJSON(cmd, map[string]any{key: val})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, val)
			return nil
		},
	}
}

func newConfigSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newConfigStore()
			if err != nil {
				return err
			}
			cfg, err := s.Load()
			if err != nil {
				return err
			}

			key := strings.TrimSpace(args[0])
			value := args[1]
			cfg, err = setConfigKey(cfg, key, value)
			if err != nil {
				return err
			}
			if err := s.Save(cfg); err != nil {
				return err
			}
			return writeOK(cmd, flags, "config.set", map[string]any{"key": key})
		},
	}
}

func newConfigUnsetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a config key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newConfigStore()
			if err != nil {
				return err
			}
			cfg, err := s.Load()
			if err != nil {
				return err
			}

			key := strings.TrimSpace(args[0])
			cfg, err = setConfigKey(cfg, key, "")
			if err != nil {
				return err
			}
			if err := s.Save(cfg); err != nil {
				return err
			}
			return writeOK(cmd, flags, "config.unset", map[string]any{"key": key})
		},
	}
}

func printConfigPlain(cmd *cobra.Command, cfg appconfig.Config) {
	entries := map[string]string{
		"host":     cfg.Host,
		"username": cfg.Username,
		"password": maskSecret(cfg.Password),
		"timeout":  cfg.Timeout.String(),
		"format":   cfg.Format,
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, entries[k])
	}
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}

func getConfigKey(cfg appconfig.Config, key string) (string, bool) {
	switch key {
	case "host":
		return cfg.Host, true
	case "username":
		return cfg.Username, true
	case "password":
		return maskSecret(cfg.Password), true
	case "timeout":
		return cfg.Timeout.String(), true
	case "format":
		return cfg.Format, true
	default:
		return "", false
	}
}

func setConfigKey(cfg appconfig.Config, key, value string) (appconfig.Config, error) {
	switch key {
	case "host":
		cfg.Host = value
	case "username":
		cfg.Username = value
	case "password":
		cfg.Password = value
	case "timeout":
		if value == "" {
			cfg.Timeout = 0
			break
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return cfg, fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		cfg.Timeout = d
	case "format":
		cfg.Format = value
	default:
		return cfg, errors.New("unknown key: " + key)
	}
	return cfg, nil
}
