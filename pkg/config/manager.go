package config

import (
	"fmt"
	"os"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/webship/provision/pkg/fsutil"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// PROVISION_DOMAIN or PROVISION_INSTALL_DATABASE.
const envPrefix = "PROVISION"

// Manager loads the run configuration from flags and environment variables.
// Configuration priority: defaults < environment variables < flags.
type Manager struct {
	Viper   *viper.Viper
	flagSet *pflag.FlagSet
}

// NewCommandManager constructs a Manager bound to the provided Cobra command.
// All flags registered on the command become viper keys with PROVISION_*
// environment overrides.
func NewCommandManager(cmd *cobra.Command) *Manager {
	viperInstance := viper.New()
	viperInstance.SetEnvPrefix(envPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	return &Manager{
		Viper:   viperInstance,
		flagSet: cmd.Flags(),
	}
}

// Load binds the command's flags, unmarshals the configuration, resolves
// defaults for the deploy user and source path, and validates the result.
func (m *Manager) Load() (Config, error) {
	err := m.Viper.BindPFlags(m.flagSet)
	if err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	var cfg Config

	decoderConfig := func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToBasicTypeHookFunc(),
		)
	}

	err = m.Viper.Unmarshal(&cfg, decoderConfig)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	err = applyDefaults(&cfg)
	if err != nil {
		return Config{}, err
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills the deploy user and source path when unset and
// normalizes the source path to an absolute location.
func applyDefaults(cfg *Config) error {
	if cfg.User == "" {
		defaultUser, err := DefaultUser()
		if err != nil {
			return err
		}

		cfg.User = defaultUser
	}

	if cfg.Src == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}

		cfg.Src = workingDir
	}

	expanded, err := fsutil.ExpandHomePath(cfg.Src)
	if err != nil {
		return fmt.Errorf("failed to expand source path: %w", err)
	}

	cfg.Src = expanded

	return nil
}
