package config

// Theme values accepted in the config file and by --theme validation.
const (
	ThemeAuto = "auto" // color when the terminal supports it
	ThemeANSI = "ansi" // force the 16-color ANSI palette
	ThemeMono = "mono" // no color at all
)

// Config represents the optional ~/.config/ttop/config.yaml file. It
// only carries display preferences; the sampling cadence and metric
// set are fixed.
type Config struct {
	// Theme selects the color handling: "auto", "ansi", or "mono".
	Theme string `yaml:"theme" mapstructure:"theme"`

	// AltScreen toggles the terminal alternate screen for the TUI.
	AltScreen bool `yaml:"altscreen" mapstructure:"altscreen"`

	// Plain skips the TUI and uses the clear-and-reprint renderer,
	// as if --plain was always passed.
	Plain bool `yaml:"plain" mapstructure:"plain"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Theme:     ThemeAuto,
		AltScreen: true,
		Plain:     false,
	}
}

func validTheme(theme string) bool {
	switch theme {
	case ThemeAuto, ThemeANSI, ThemeMono:
		return true
	}
	return false
}
