package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreipop/ediplug/internal/appconfig"
)

func swapConfigStore(t *testing.T) appconfig.Store {
	t.Helper()
	s, err := appconfig.NewFileStore(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	old := newConfigStore
	t.Cleanup(func() { newConfigStore = old })
	newConfigStore = func() (appconfig.Store, error) { return s, nil }
	return s
}

func TestConfigSetThenGet(t *testing.T) {
	flags := &rootFlags{Format: formatPlain}
	swapConfigStore(t)

	runCommand(t, newConfigSetCmd(flags), "host", "172.16.100.75")

	out := runCommand(t, newConfigGetCmd(flags), "host")
	if strings.TrimSpace(out) != "host=172.16.100.75" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestConfigGetAllMasksPassword(t *testing.T) {
	flags := &rootFlags{Format: formatPlain}
	s := swapConfigStore(t)
	if err := s.Save(appconfig.Config{Host: "10.0.0.5", Password: "1234"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := runCommand(t, newConfigGetCmd(flags))
	if strings.Contains(out, "1234") {
		t.Fatalf("password leaked: %q", out)
	}
	if !strings.Contains(out, "password=****") {
		t.Fatalf("expected masked password: %q", out)
	}
	if !strings.Contains(out, "host=10.0.0.5") {
		t.Fatalf("expected host: %q", out)
	}
}

func TestConfigSetTimeoutValidatesDuration(t *testing.T) {
	flags := &rootFlags{Format: formatPlain}
	swapConfigStore(t)

	cmd := newConfigSetCmd(flags)
	cmd.SetOut(&captureWriter{})
	cmd.SetErr(&captureWriter{})
	cmd.SetArgs([]string{"timeout", "soon"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	flags := &rootFlags{Format: formatPlain}
	swapConfigStore(t)

	cmd := newConfigSetCmd(flags)
	cmd.SetOut(&captureWriter{})
	cmd.SetErr(&captureWriter{})
	cmd.SetArgs([]string{"color", "red"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestConfigUnsetResetsToDefault(t *testing.T) {
	flags := &rootFlags{Format: formatPlain}
	s := swapConfigStore(t)
	if err := s.Save(appconfig.Config{Format: "json"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runCommand(t, newConfigUnsetCmd(flags), "format")

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "plain" {
		t.Fatalf("format: %q", cfg.Format)
	}
}

func TestConfigPathCmd(t *testing.T) {
	flags := &rootFlags{Format: formatPlain}
	s := swapConfigStore(t)

	out := runCommand(t, newConfigPathCmd(flags))
	if strings.TrimSpace(out) != s.Path() {
		t.Fatalf("unexpected output: %q", out)
	}
}
