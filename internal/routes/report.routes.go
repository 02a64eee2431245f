package routes

import (
	"os"

	"diskusage/internal/config"
	"diskusage/internal/controllers"
	"diskusage/internal/logging"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flag name -> config key
var flagKeys = map[string]string{
	"sort":             "sort",
	"min-size":         "min_size",
	"all":              "all",
	"no-color":         "no_color",
	"no-bars":          "no_bars",
	"yellow-threshold": "yellow_threshold",
	"red-threshold":    "red_threshold",
	"type":             "include_types",
	"exclude-type":     "exclude_types",
	"source":           "source",
	"output":           "output",
	"log-level":        "log_level",
}

// RegisterReportRoutes attaches the report flags and handler to the root command
func RegisterReportRoutes(root *cobra.Command, v *viper.Viper, newSource controllers.SourceFactory) error {
	d := config.Defaults()
	flags := root.Flags()

	flags.StringP("sort", "s", d.Sort, "Sort output by: usage, size, or mount")
	flags.Uint64P("min-size", "m", uint64(d.MinSize), "Minimum disk size to display in GB")
	flags.BoolP("all", "a", false, "Show all disks (including those smaller than min-size)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("no-bars", false, "Disable progress bars")
	flags.Float64("yellow-threshold", d.YellowThreshold, "Set yellow threshold percentage")
	flags.Float64("red-threshold", d.RedThreshold, "Set red threshold percentage")
	flags.StringSlice("type", nil, "Only show these filesystem types (repeatable)")
	flags.StringSlice("exclude-type", nil, "Hide these filesystem types (repeatable)")
	flags.String("source", d.Source, "Volume source: auto, gopsutil, or mountinfo")
	flags.StringP("output", "o", d.Output, "Output format: table or json")
	flags.String("log-level", d.LogLevel, "Log level: debug, info, warn, or error")
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/disk-usage/config.yaml)")

	if err := bindFlags(v, flags); err != nil {
		return err
	}

	root.RunE = func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		if err := config.ReadConfigFile(v, configFile); err != nil {
			return err
		}

		settings, err := config.Load(v)
		if err != nil {
			return err
		}
		if !colorSupported() {
			settings.NoColor = true
		}

		logger, err := logging.New(settings.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			logger.WithField("path", used).Debug("Loaded config file")
		}

		controller := controllers.NewReportController(newSource, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return controller.Run(cmd.Context(), settings)
	}

	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "error binding flag --%s", name)
		}
	}
	return nil
}

// colorSupported reports whether stdout is a terminal and NO_COLOR is unset
func colorSupported() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
