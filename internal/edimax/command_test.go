package edimax

import (
	"strings"
	"testing"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`

func TestBuildGetStateCommand(t *testing.T) {
	want := xmlDecl + `<SMARTPLUG id="edimax"><CMD id="get"><Device.System.Power.State/></CMD></SMARTPLUG>`
	if got := string(buildGetStateCommand()); got != want {
		t.Fatalf("get state command:\n got %s\nwant %s", got, want)
	}
}

func TestBuildSetStateCommand(t *testing.T) {
	want := xmlDecl + `<SMARTPLUG id="edimax"><CMD id="setup"><Device.System.Power.State>ON</Device.System.Power.State></CMD></SMARTPLUG>`
	got := string(buildSetStateCommand(StateOn))
	if got != want {
		t.Fatalf("set state command:\n got %s\nwant %s", got, want)
	}
	if strings.Count(got, "<CMD ") != 1 {
		t.Fatalf("expected exactly one CMD element: %s", got)
	}
}

func TestBuildMeterCommand(t *testing.T) {
	want := xmlDecl + `<SMARTPLUG id="edimax"><CMD id="get"><NOW_POWER><Device.System.Power.NowPower/></NOW_POWER></CMD></SMARTPLUG>`
	if got := string(buildMeterCommand(attrNowPower)); got != want {
		t.Fatalf("now power command:\n got %s\nwant %s", got, want)
	}

	if got := string(buildMeterCommand(attrNowEnergyDay)); !strings.Contains(got, "<NOW_POWER><Device.System.Power.NowEnergy.Day/></NOW_POWER>") {
		t.Fatalf("daily energy command: %s", got)
	}
}

func TestBuildSystemInfoCommand(t *testing.T) {
	got := string(buildSystemInfoCommand())
	for _, attr := range []string{"Run.Model", "Run.FW.Version", "Run.LAN.Client.MAC.Address", "Device.System.Name"} {
		if !strings.Contains(got, "<"+attr+"/>") {
			t.Fatalf("missing %s in: %s", attr, got)
		}
	}
	if !strings.Contains(got, `<CMD id="get"><SYSTEM_INFO>`) {
		t.Fatalf("unexpected shape: %s", got)
	}
}

func TestParseState(t *testing.T) {
	for _, in := range []string{"on", "ON", " On "} {
		st, err := ParseState(in)
		if err != nil {
			t.Fatalf("ParseState(%q): %v", in, err)
		}
		if st != StateOn {
			t.Fatalf("ParseState(%q) = %q", in, st)
		}
	}
	if _, err := ParseState("standby"); err == nil {
		t.Fatalf("expected error for invalid state")
	}
}
