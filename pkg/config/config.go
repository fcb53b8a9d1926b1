package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// NewConfig returns a config object with default structures
// initialized.  The config can be loaded from other sources to
// override the defaults.
func NewConfig() *Config {
	return &Config{
		BuildrootDir:      ".",
		BuildDir:          filepath.Join("output", "build"),
		Bind:              ":8080",
		RefreshIntervalMS: 2000,
		Store:             "bitcask",
	}
}

// LoadFromFile does as the name suggests, and loads the config from a
// file
func (c *Config) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(c)
}
