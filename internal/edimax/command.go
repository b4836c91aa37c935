package edimax

import "strings"

// Device attribute paths understood by the plug firmware.
const (
	attrPowerState     = "Device.System.Power.State"
	attrNowPower       = "Device.System.Power.NowPower"
	attrNowCurrent     = "Device.System.Power.NowCurrent"
	attrNowEnergyDay   = "Device.System.Power.NowEnergy.Day"
	attrNowEnergyWeek  = "Device.System.Power.NowEnergy.Week"
	attrNowEnergyMonth = "Device.System.Power.NowEnergy.Month"

	attrModel    = "Run.Model"
	attrFirmware = "Run.FW.Version"
	attrMAC      = "Run.LAN.Client.MAC.Address"
	attrName     = "Device.System.Name"
)

const deviceID = "edimax"

// Command construction is pure: each builder serializes an independent
// document, no shared builder state.

func writeCommandOpen(b *strings.Builder, cmdID string) {
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<SMARTPLUG id="` + deviceID + `">`)
	b.WriteString(`<CMD id="` + cmdID + `">`)
}

func writeCommandClose(b *strings.Builder) {
	b.WriteString(`</CMD></SMARTPLUG>`)
}

func buildGetStateCommand() []byte {
	var b strings.Builder
	writeCommandOpen(&b, "get")
	b.WriteString(`<` + attrPowerState + `/>`)
	writeCommandClose(&b)
	return []byte(b.String())
}

func buildSetStateCommand(state State) []byte {
	var b strings.Builder
	writeCommandOpen(&b, "setup")
	b.WriteString(`<` + attrPowerState + `>`)
	b.WriteString(string(state))
	b.WriteString(`</` + attrPowerState + `>`)
	writeCommandClose(&b)
	return []byte(b.String())
}

func buildMeterCommand(attr string) []byte {
	var b strings.Builder
	writeCommandOpen(&b, "get")
	b.WriteString(`<NOW_POWER><` + attr + `/></NOW_POWER>`)
	writeCommandClose(&b)
	return []byte(b.String())
}

func buildSystemInfoCommand() []byte {
	var b strings.Builder
	writeCommandOpen(&b, "get")
	b.WriteString(`<SYSTEM_INFO>`)
	for _, attr := range []string{attrModel, attrFirmware, attrMAC, attrName} {
		b.WriteString(`<` + attr + `/>`)
	}
	b.WriteString(`</SYSTEM_INFO>`)
	writeCommandClose(&b)
	return []byte(b.String())
}
