package config

// Config is the top-level majasdoc configuration, corresponding to
// majasdoc.yml.
type Config struct {
	Port     int    `yaml:"port" koanf:"port"`
	WebDir   string `yaml:"web_dir" koanf:"web_dir"`
	DataFile string `yaml:"data_file" koanf:"data_file"`
	MediaDir string `yaml:"media_dir" koanf:"media_dir"`
	PrefsDB  string `yaml:"prefs_db" koanf:"prefs_db"`

	// PrecacheMedia stages every referenced media file into the asset
	// cache at startup and activates the generation at once.
	PrecacheMedia bool `yaml:"precache_media" koanf:"precache_media"`

	// AllowAllOrigins relaxes CORS for development.
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	// Include/Exclude are doublestar patterns for the orphan scan in
	// `majasdoc validate`.
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// DefaultConfig returns a Config with sensible defaults: the static
// site under www/ with the document and media beside it.
func DefaultConfig() *Config {
	return &Config{
		Port:     8462,
		WebDir:   "www",
		DataFile: "www/data.json",
		MediaDir: "www/media",
		PrefsDB:  ".majasdoc/prefs.db",
		Exclude:  []string{"**/.DS_Store", "**/*.tmp"},
	}
}
