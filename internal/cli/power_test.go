package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/andreipop/ediplug/internal/edimax"
)

func TestPowerCmdPlain(t *testing.T) {
	flags := &rootFlags{Host: "192.0.2.10", Format: formatPlain}
	swapPlugClient(t, &fakePlug{watts: 42.5})

	out := runCommand(t, newPowerCmd(flags))
	if strings.TrimSpace(out) != "42.5" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestPowerCmdJSON(t *testing.T) {
	flags := &rootFlags{Host: "192.0.2.10", Format: formatJSON}
	swapPlugClient(t, &fakePlug{watts: 42.5})

	out := runCommand(t, newPowerCmd(flags))
	if !strings.Contains(out, `"watts": 42.5`) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEnergyCmdPeriods(t *testing.T) {
	flags := &rootFlags{Host: "192.0.2.10", Format: formatPlain}
	plug := &fakePlug{kwhDay: 1.5, kwhWeek: 10.25, kwhMonth: 40}
	swapPlugClient(t, plug)

	if out := runCommand(t, newEnergyCmd(flags)); strings.TrimSpace(out) != "1.5" {
		t.Fatalf("day: %q", out)
	}
	if out := runCommand(t, newEnergyCmd(flags), "--period", "week"); strings.TrimSpace(out) != "10.25" {
		t.Fatalf("week: %q", out)
	}
	if out := runCommand(t, newEnergyCmd(flags), "--period", "month"); strings.TrimSpace(out) != "40" {
		t.Fatalf("month: %q", out)
	}
}

func TestEnergyCmdInvalidPeriod(t *testing.T) {
	flags := &rootFlags{Host: "192.0.2.10", Format: formatPlain}
	swapPlugClient(t, &fakePlug{})

	cmd := newEnergyCmd(flags)
	cmd.SetOut(&captureWriter{})
	cmd.SetErr(&captureWriter{})
	cmd.SetArgs([]string{"--period", "year"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected error for invalid period")
	}
}

func TestCurrentCmdTSV(t *testing.T) {
	flags := &rootFlags{Host: "192.0.2.10", Format: formatTSV}
	swapPlugClient(t, &fakePlug{amps: 0.35})

	out := runCommand(t, newCurrentCmd(flags))
	if strings.TrimSpace(out) != "amps\t0.35" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestPowerCmdPropagatesProtocolError(t *testing.T) {
	flags := &rootFlags{Host: "192.0.2.10", Format: formatPlain}
	swapPlugClient(t, &fakePlug{meterErr: &edimax.ProtocolError{Reason: "non-numeric meter response"}})

	cmd := newPowerCmd(flags)
	cmd.SetOut(&captureWriter{})
	cmd.SetErr(&captureWriter{})
	cmd.SetArgs([]string{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
