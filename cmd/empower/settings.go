package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexshd/empower"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"modify-message": "modifyMessageOnFail",
	"save-context":   "saveContextOnFail",
}

// loadSettings merges the config file, EMPOWER_* variables and flags and
// resolves them over the defaults.
func loadSettings(cmd *cobra.Command) (empower.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EMPOWER")

	for _, key := range []string{"destructive", "modifyMessageOnFail", "saveContextOnFail"} {
		if err := v.BindEnv(key); err != nil {
			return empower.Config{}, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return empower.Config{}, fmt.Errorf("failed to bind flag --%s: %w", flag, err)
		}
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return empower.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg, err := empower.ResolveMap(v.AllSettings())
	if err != nil {
		return empower.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
