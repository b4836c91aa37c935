package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreipop/ediplug/internal/edimax"
)

func newStateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the plug's power state",
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
			if isJSON(flags) {
				return writeJSON(cmd, map[string]any{"state": string(st)})
			}
			if isTSV(flags) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "state\t%s\n", st)
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(st))
			return nil
		},
	}
}

func newOnCmd(flags *rootFlags) *cobra.Command {
	return newSetStateCmd(flags, "on", "Switch the plug on", edimax.StateOn)
}

func newOffCmd(flags *rootFlags) *cobra.Command {
	return newSetStateCmd(flags, "off", "Switch the plug off", edimax.StateOff)
}

func newSetStateCmd(flags *rootFlags, use, short string, state edimax.State) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := newPlugClient(ctx, flags)
			if err != nil {
				return err
			}
			if err := c.SetState(ctx, state); err != nil {
				return err
			}
			return writeOK(cmd, flags, use, map[string]any{"state": string(state)})
		},
	}
}

func newToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Toggle the plug's power state",
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
			next := edimax.StateOn
			if st == edimax.StateOn {
				next = edimax.StateOff
			}
			if err := c.SetState(ctx, next); err != nil {
				return err
			}
			if isJSON(flags) {
				return writeJSON(cmd, map[string]any{"state": string(next)})
			}
			writePlainLine(cmd, flags, string(next))
			return nil
		},
	}
}
