package loaders

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/reaandrew/sqlpick/core"
	log "github.com/sirupsen/logrus"
)

// ConfigLoader reads a query file into a core.Config.
type ConfigLoader interface {
	Load(name string) (core.Config, error)
}

// NewConfigLoader picks the loader matching the file extension of name.
func NewConfigLoader(fsys fs.FS, name string) (ConfigLoader, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return NewYamlConfigLoader(fsys), nil
	case ".toml":
		return NewTomlConfigLoader(fsys), nil
	}
	return nil, fmt.Errorf("unsupported config format: %s", name)
}

// LoadConfigFile loads the config at path, relative paths resolved against the
// working directory.
func LoadConfigFile(path string) (core.Config, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	loader, err := NewConfigLoader(os.DirFS(dir), name)
	if err != nil {
		return core.Config{}, err
	}

	config, err := loader.Load(name)
	if err != nil {
		return core.Config{}, err
	}

	log.Debugf("Loaded %d queries from %s", len(config.Queries), path)
	return config, nil
}

func readConfigFile(fsys fs.FS, name string) ([]byte, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", name, err)
	}
	return content, nil
}

func warnReservedAliases(name string, queries []core.Query) {
	for _, query := range queries {
		if query.HasReservedAlias() {
			log.Warnf("Query alias %q in %s contains %q and cannot be selected", query.Alias, name, core.QueryDelimiter)
		}
	}
}
