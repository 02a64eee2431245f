package config

import (
	"os"
	"path/filepath"
	"strings"

	"diskusage/internal/models"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. DISK_USAGE_MIN_SIZE
const EnvPrefix = "DISK_USAGE"

// AppName names the config directory under the user's config home
const AppName = "disk-usage"

// Settings is the validated-by-type configuration of one run
type Settings struct {
	Sort            string   `mapstructure:"sort"`
	MinSize         int64    `mapstructure:"min_size"`
	All             bool     `mapstructure:"all"`
	NoColor         bool     `mapstructure:"no_color"`
	NoBars          bool     `mapstructure:"no_bars"`
	YellowThreshold float64  `mapstructure:"yellow_threshold"`
	RedThreshold    float64  `mapstructure:"red_threshold"`
	IncludeTypes    []string `mapstructure:"include_types"`
	ExcludeTypes    []string `mapstructure:"exclude_types"`
	Source          string   `mapstructure:"source"`
	Output          string   `mapstructure:"output"`
	LogLevel        string   `mapstructure:"log_level"`
}

// Thresholds returns the configured colour cut-points
func (s *Settings) Thresholds() models.UsageThresholds {
	return models.UsageThresholds{
		Yellow: s.YellowThreshold,
		Red:    s.RedThreshold,
	}
}

// Defaults returns the settings used when nothing is configured
func Defaults() Settings {
	th := models.DefaultThresholds()
	return Settings{
		Sort:            "usage",
		MinSize:         1,
		YellowThreshold: th.Yellow,
		RedThreshold:    th.Red,
		Source:          "auto",
		Output:          "table",
		LogLevel:        "warn",
	}
}

// New creates a viper instance carrying the defaults and reading DISK_USAGE_* variables
func New() *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault("sort", d.Sort)
	v.SetDefault("min_size", d.MinSize)
	v.SetDefault("all", d.All)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("no_bars", d.NoBars)
	v.SetDefault("yellow_threshold", d.YellowThreshold)
	v.SetDefault("red_threshold", d.RedThreshold)
	v.SetDefault("include_types", []string{})
	v.SetDefault("exclude_types", []string{})
	v.SetDefault("source", d.Source)
	v.SetDefault("output", d.Output)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadConfigFile loads path, or config.yaml from the default locations when path is empty.
// A missing default file is not an error, a missing explicit one is.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", path)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range defaultConfigPaths() {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

// Load decodes the merged flags, environment, file and defaults
func Load(v *viper.Viper) (*Settings, error) {
	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return settings, nil
}

func defaultConfigPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", AppName))
	}
	return paths
}
