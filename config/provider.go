package config

import "go.uber.org/fx"

// NewProvider supplies the config to the fx graph. A non-nil customConfig is
// used as-is; otherwise the environment is loaded on first resolution.
func NewProvider(customConfig *Config) fx.Option {
	if customConfig != nil {
		return fx.Provide(func() *Config {
			return customConfig
		})
	}

	return fx.Provide(func() *Config {
		cfg := &Config{}
		if err := LoadConfig(cfg); err != nil {
			panic(err)
		}
		return cfg
	})
}
