package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreipop/ediplug/internal/edimax"
)

type statusOutput struct {
	Host     string             `json:"host"`
	State    string             `json:"state"`
	Info     *edimax.SystemInfo `json:"info,omitempty"`
	Watts    *float64           `json:"watts,omitempty"`
	Amps     *float64           `json:"amps,omitempty"`
	KWhDay   *float64           `json:"kwhDay,omitempty"`
	KWhWeek  *float64           `json:"kwhWeek,omitempty"`
	KWhMonth *float64           `json:"kwhMonth,omitempty"`
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show state, metering and device info",
		Long:  "Prints the relay state plus, where the hardware supports it, power metering and device identification. Metering reads fail on the SP-1101W and are omitted. Use --format json for machine-readable output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := newPlugClient(ctx, flags)
			if err != nil {
				return err
			}

			st, err := c.GetState(ctx)
			if err != nil {
				return err
			}
			out := statusOutput{Host: flags.Host, State: string(st)}

			// Best-effort on everything beyond the state: non-metering
			// models reject these reads.
			if info, err := c.SystemInfo(ctx); err == nil {
				out.Info = &info
			}
			if v, err := c.NowPower(ctx); err == nil {
				out.Watts = &v
			}
			if v, err := c.NowCurrent(ctx); err == nil {
				out.Amps = &v
			}
			if v, err := c.NowEnergyDay(ctx); err == nil {
				out.KWhDay = &v
			}
			if v, err := c.NowEnergyWeek(ctx); err == nil {
				out.KWhWeek = &v
			}
			if v, err := c.NowEnergyMonth(ctx); err == nil {
				out.KWhMonth = &v
			}

			if isJSON(flags) {
				return writeJSON(cmd, out)
			}

			w := cmd.OutOrStdout()
			if isTSV(flags) {
				_, _ = fmt.Fprintf(w, "host\t%s\n", out.Host)
				_, _ = fmt.Fprintf(w, "state\t%s\n", out.State)
				if out.Info != nil {
					_, _ = fmt.Fprintf(w, "model\t%s\n", out.Info.Model)
					_, _ = fmt.Fprintf(w, "firmware\t%s\n", out.Info.FirmwareVersion)
					_, _ = fmt.Fprintf(w, "mac\t%s\n", out.Info.MACAddress)
					_, _ = fmt.Fprintf(w, "name\t%s\n", out.Info.Name)
				}
				if out.Watts != nil {
					_, _ = fmt.Fprintf(w, "power_w\t%s\n", formatReading(*out.Watts))
				}
				if out.Amps != nil {
					_, _ = fmt.Fprintf(w, "current_a\t%s\n", formatReading(*out.Amps))
				}
				if out.KWhDay != nil {
					_, _ = fmt.Fprintf(w, "energy_day_kwh\t%s\n", formatReading(*out.KWhDay))
				}
				if out.KWhWeek != nil {
					_, _ = fmt.Fprintf(w, "energy_week_kwh\t%s\n", formatReading(*out.KWhWeek))
				}
				if out.KWhMonth != nil {
					_, _ = fmt.Fprintf(w, "energy_month_kwh\t%s\n", formatReading(*out.KWhMonth))
				}
				return nil
			}

			_, _ = fmt.Fprintf(w, "Host:\t\t%s\n", out.Host)
			_, _ = fmt.Fprintf(w, "State:\t\t%s\n", out.State)
			if out.Info != nil {
				_, _ = fmt.Fprintf(w, "Model:\t\t%s\n", out.Info.Model)
				_, _ = fmt.Fprintf(w, "Firmware:\t%s\n", out.Info.FirmwareVersion)
				_, _ = fmt.Fprintf(w, "MAC:\t\t%s\n", out.Info.MACAddress)
				_, _ = fmt.Fprintf(w, "Name:\t\t%s\n", out.Info.Name)
			}
			if out.Watts != nil {
				_, _ = fmt.Fprintf(w, "Power:\t\t%s W\n", formatReading(*out.Watts))
			}
			if out.Amps != nil {
				_, _ = fmt.Fprintf(w, "Current:\t%s A\n", formatReading(*out.Amps))
			}
			if out.KWhDay != nil {
				_, _ = fmt.Fprintf(w, "Energy (day):\t%s kWh\n", formatReading(*out.KWhDay))
			}
			if out.KWhWeek != nil {
				_, _ = fmt.Fprintf(w, "Energy (week):\t%s kWh\n", formatReading(*out.KWhWeek))
			}
			if out.KWhMonth != nil {
				_, _ = fmt.Fprintf(w, "Energy (month):\t%s kWh\n", formatReading(*out.KWhMonth))
			}
			return nil
		},
	}
}

func newInfoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show model, firmware, MAC and device name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := newPlugClient(ctx, flags)
			if err != nil {
				return err
			}
			info, err := c.SystemInfo(ctx)
			if err != nil {
				return err
			}
			if isJSON(flags) {
				return writeJSON(cmd, info)
			}
			w := cmd.OutOrStdout()
			if isTSV(flags) {
				_, _ = fmt.Fprintf(w, "model\t%s\n", info.Model)
				_, _ = fmt.Fprintf(w, "firmware\t%s\n", info.FirmwareVersion)
				_, _ = fmt.Fprintf(w, "mac\t%s\n", info.MACAddress)
				_, _ = fmt.Fprintf(w, "name\t%s\n", info.Name)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Model:\t\t%s\n", info.Model)
			_, _ = fmt.Fprintf(w, "Firmware:\t%s\n", info.FirmwareVersion)
			_, _ = fmt.Fprintf(w, "MAC:\t\t%s\n", info.MACAddress)
			_, _ = fmt.Fprintf(w, "Name:\t\t%s\n", info.Name)
			return nil
		},
	}
}
