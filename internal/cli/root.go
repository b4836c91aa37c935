package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/andreipop/ediplug/internal/appconfig"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type rootFlags struct {
	Host     string
	Username string
	Password string
	Timeout  time.Duration
	Format   string
	Debug    bool
}

var loadAppConfig = func() (appconfig.Config, error) {
	s, err := appconfig.NewDefaultStore()
	if err != nil {
		return appconfig.Config{}, err
	}
	return s.Load()
}

func newRootCmd() (*cobra.Command, *rootFlags, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:          "ediplug",
		Short:        "Control Edimax smart plugs from the command line",
		Long:         "Control an Edimax SP-1101W or SP-2101W smart plug over your local network: switch it on or off, and read instantaneous power and cumulative energy on metering-capable models.",
		Example:      "  ediplug state --host 172.16.100.75\n  ediplug on\n  ediplug power\n  ediplug energy --period week\n  ediplug status --format json",
		SilenceUsage: true,
		Version:      Version,
	}
	rootCmd.SetVersionTemplate("ediplug {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flags.Host, "host", cfg.Host, "Plug IP address or hostname")
	rootCmd.PersistentFlags().StringVar(&flags.Username, "username", cfg.Username, "HTTP auth username")
	rootCmd.PersistentFlags().StringVar(&flags.Password, "password", cfg.Password, "HTTP auth password")
	rootCmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", cfg.Timeout, "Timeout for network calls")
	rootCmd.PersistentFlags().StringVar(&flags.Format, "format", cfg.Format, "Output format: plain|json|tsv")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setupLogging(flags.Debug)
		format, err := normalizeFormat(flags.Format)
		if err != nil {
			return err
		}
		flags.Format = format
		return nil
	}

	rootCmd.AddCommand(newStateCmd(flags))
	rootCmd.AddCommand(newOnCmd(flags))
	rootCmd.AddCommand(newOffCmd(flags))
	rootCmd.AddCommand(newToggleCmd(flags))
	rootCmd.AddCommand(newPowerCmd(flags))
	rootCmd.AddCommand(newCurrentCmd(flags))
	rootCmd.AddCommand(newEnergyCmd(flags))
	rootCmd.AddCommand(newInfoCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))

	return rootCmd, flags, nil
}

func Execute() error {
	rootCmd, _, err := newRootCmd()
	if err != nil {
		return err
	}
	rootCmd.SetContext(context.Background())
	return rootCmd.Execute()
}

func validateTarget(flags *rootFlags) error {
	if flags.Host == "" {
		return errors.New("provide --host (or set a default via `ediplug config set host <addr>`)")
	}
	return nil
}
