package config

// File represents the structure of the passcheck.yaml configuration file.
// The file is nested for readability; Apply flattens it onto a Config.
// Every field is optional: absent values leave the Config untouched.
type File struct {
	// Server configures the web interface.
	Server ServerSection `yaml:"server,omitempty"`

	// History configures the local analysis history database.
	History HistorySection `yaml:"history,omitempty"`

	// Generator configures password generation.
	Generator GeneratorSection `yaml:"generator,omitempty"`

	// Wordlists points at extra reference data files.
	Wordlists WordlistsSection `yaml:"wordlists,omitempty"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// ServerSection holds web server settings.
type ServerSection struct {
	// Addr is the listen address in "host:port" or ":port" format.
	Addr string `yaml:"addr,omitempty"`
}

// HistorySection holds analysis history settings.
type HistorySection struct {
	// Enabled turns on saving masked analysis summaries.
	Enabled bool `yaml:"enabled,omitempty"`

	// Dir is the directory for the SQLite database file.
	Dir string `yaml:"dir,omitempty"`
}

// GeneratorSection holds password generation settings.
type GeneratorSection struct {
	// Length is the default generated password length.
	Length int `yaml:"length,omitempty"`
}

// WordlistsSection points at extra newline-delimited word files merged
// into the built-in reference data.
type WordlistsSection struct {
	// CommonPasswords is a file of extra common passwords.
	CommonPasswords string `yaml:"common_passwords,omitempty"`

	// DictionaryWords is a file of extra dictionary words.
	DictionaryWords string `yaml:"dictionary_words,omitempty"`
}

// Apply copies every value set in the file onto cfg. Zero values are
// treated as "not set" so a sparse file only overrides what it names.
// Booleans are the exception: true in the file always wins, false is
// indistinguishable from absent and never overrides.
func (f *File) Apply(cfg *Config) {
	if f.Server.Addr != "" {
		cfg.ServerAddr = f.Server.Addr
	}
	if f.History.Enabled {
		cfg.HistoryEnabled = true
	}
	if f.History.Dir != "" {
		cfg.HistoryDir = f.History.Dir
	}
	if f.Generator.Length != 0 {
		cfg.GeneratorLength = f.Generator.Length
	}
	if f.Wordlists.CommonPasswords != "" {
		cfg.CommonPasswordFile = f.Wordlists.CommonPasswords
	}
	if f.Wordlists.DictionaryWords != "" {
		cfg.DictionaryFile = f.Wordlists.DictionaryWords
	}
	if f.Verbose {
		cfg.Verbose = true
	}
}
