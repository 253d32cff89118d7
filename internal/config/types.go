package config

// Config is the runtime configuration of the portfolio window.
type Config struct {
	Window  WindowConfig  `koanf:"window" yaml:"window"`
	Theme   ThemeConfig   `koanf:"theme" yaml:"theme"`
	Sound   SoundConfig   `koanf:"sound" yaml:"sound"`
	Log     LogConfig     `koanf:"log" yaml:"log"`
	Profile ProfileConfig `koanf:"profile" yaml:"profile"`
}

type WindowConfig struct {
	Width  int    `koanf:"width" yaml:"width"`
	Height int    `koanf:"height" yaml:"height"`
	Title  string `koanf:"title" yaml:"title"`
}

// ThemeConfig controls how the initial theme is resolved and where the
// chosen theme is persisted.
type ThemeConfig struct {
	// Default is used when neither a stored preference nor the system
	// color scheme yields a value.
	Default string `koanf:"default" yaml:"default"`
	// StorageKey is the preference key the theme is stored under.
	StorageKey string `koanf:"storage_key" yaml:"storage_key"`
	// StorePath is the SQLite file backing the preference store. Empty
	// means the per-user config directory.
	StorePath string `koanf:"store_path" yaml:"store_path"`
	// FollowSystem enables the OS color-scheme query on first launch.
	FollowSystem bool `koanf:"follow_system" yaml:"follow_system"`
}

type SoundConfig struct {
	Enabled bool    `koanf:"enabled" yaml:"enabled"`
	Volume  float64 `koanf:"volume" yaml:"volume"`
}

type LogConfig struct {
	Level       string `koanf:"level" yaml:"level"`
	Development bool   `koanf:"development" yaml:"development"`
}

// ProfileConfig is opaque pass-through data rendered by the profile card.
type ProfileConfig struct {
	Name     string   `koanf:"name" yaml:"name"`
	Titles   []string `koanf:"titles" yaml:"titles"`
	Bio      string   `koanf:"bio" yaml:"bio"`
	Location string   `koanf:"location" yaml:"location"`
	Email    string   `koanf:"email" yaml:"email"`
	Phone    string   `koanf:"phone" yaml:"phone"`
	WhatsApp string   `koanf:"whatsapp" yaml:"whatsapp"`
	Website  string   `koanf:"website" yaml:"website"`
	Fiverr   string   `koanf:"fiverr" yaml:"fiverr"`
	Socials  []Social `koanf:"socials" yaml:"socials"`
}

type Social struct {
	Label    string `koanf:"label" yaml:"label"`
	Username string `koanf:"username" yaml:"username"`
	URL      string `koanf:"url" yaml:"url"`
}
