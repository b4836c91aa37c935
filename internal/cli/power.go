package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newPowerCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "power",
		Short: "Show instantaneous power draw in watts (SP-2101W)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeterCmd(cmd, flags, "watts", func(ctx context.Context, c plugClient) (float64, error) {
				return c.NowPower(ctx)
			})
		},
	}
}

func newCurrentCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show instantaneous current in amps (SP-2101W)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeterCmd(cmd, flags, "amps", func(ctx context.Context, c plugClient) (float64, error) {
				return c.NowCurrent(ctx)
			})
		},
	}
}

func newEnergyCmd(flags *rootFlags) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Show cumulative energy in kWh (SP-2101W)",
		Long:  "Reads the plug's cumulative energy counter for the current day, week or month in kilowatt-hours. Only metering-capable models answer these reads.",
		RunE: func(cmd *cobra.Command, args []string) error {
			read, err := energyReader(period)
			if err != nil {
				return err
			}
			return runMeterCmd(cmd, flags, "kwh", read)
		},
	}
	cmd.Flags().StringVar(&period, "period", "day", "Accumulation period: day|week|month")
	return cmd
}

func energyReader(period string) (func(context.Context, plugClient) (float64, error), error) {
	switch period {
	case "day":
		return func(ctx context.Context, c plugClient) (float64, error) { return c.NowEnergyDay(ctx) }, nil
	case "week":
		return func(ctx context.Context, c plugClient) (float64, error) { return c.NowEnergyWeek(ctx) }, nil
	case "month":
		return func(ctx context.Context, c plugClient) (float64, error) { return c.NowEnergyMonth(ctx) }, nil
	default:
		return nil, errors.New("invalid --period (expected day|week|month): " + period)
	}
}

func runMeterCmd(cmd *cobra.Command, flags *rootFlags, unit string, read func(context.Context, plugClient) (float64, error)) error {
	ctx := cmd.Context()
	c, err := newPlugClient(ctx, flags)
	if err != nil {
		return err
	}
	v, err := read(ctx, c)
	if err != nil {
		return err
	}
	if isJSON(flags) {
		return writeJSON(cmd, map[string]any{unit: v})
	}
	if isTSV(flags) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", unit, formatReading(v))
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatReading(v))
	return nil
}
