package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultStorageKey = "theme-preference"
	DefaultConfigFile = "portfolio.yml"
	EnvPrefix         = "PORTFOLIO_"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Portfolio",
		},
		Theme: ThemeConfig{
			Default:      "light",
			StorageKey:   DefaultStorageKey,
			FollowSystem: true,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.2,
		},
		Log: LogConfig{
			Level: "info",
		},
		Profile: ProfileConfig{
			Name:     "Shafayat Hossain",
			Titles:   []string{"Backend ninja", "Data whisperer", "IoT tinkerer"},
			Bio:      "14+ years of experience making PHP, Python, and databases dance.",
			Location: "Dhaka, Bangladesh",
			Email:    "shafayat@engineer.com",
			Phone:    "+880 01616332313",
			WhatsApp: "8801616332313",
			Website:  "https://jqsafi.github.io",
			Fiverr:   "https://fiverr.com/jqsafi",
			Socials: []Social{
				{Label: "GitHub", Username: "jqsafi", URL: "https://github.com/jqsafi"},
				{Label: "LinkedIn", Username: "jqsafi", URL: "https://linkedin.com/in/jqsafi"},
			},
		},
	}
}

// DefaultStorePath returns the preference database location under the
// per-user config directory, falling back to the working directory.
func DefaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "preferences.db"
	}
	return filepath.Join(dir, "particle-portfolio", "preferences.db")
}
