package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings are runtime knobs unrelated to what is monitored. They come from
// the environment with sane defaults; probe interval, report interval and the
// HTTP timeout are deliberately not here (fixed by design).
type Settings struct {
	APIAddr       string `mapstructure:"api_addr"`       // status API bind address; empty disables the server
	LogDir        string `mapstructure:"log_dir"`        // rotating log file directory
	LogLevel      string `mapstructure:"log_level"`      // debug|info|warn|error
	ConsoleReport bool   `mapstructure:"console_report"` // print availability lines to stdout
}

// LoadSettings reads settings from MONITOR_* environment variables.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetDefault("api_addr", "")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_level", "info")
	v.SetDefault("console_report", true)

	v.SetEnvPrefix("monitor")
	v.AutomaticEnv()

	// Unmarshal only reads env values for keys viper knows about.
	for _, key := range []string{"api_addr", "log_dir", "log_level", "console_report"} {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}
