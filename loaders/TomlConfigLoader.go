package loaders

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/fvbommel/sortorder"
	"github.com/reaandrew/sqlpick/core"
)

type tomlConfig struct {
	Username string            `toml:"username"`
	DBName   string            `toml:"dbname"`
	Queries  map[string]string `toml:"queries"`
}

var requiredTomlKeys = []string{"username", "dbname", "queries"}

// TomlConfigLoader reads queries keyed by alias:
//
//	username = "admin"
//	dbname = "app"
//
//	[queries]
//	users = "SELECT * FROM users"
//
// Aliases come back in natural sort order since the source is a mapping.
type TomlConfigLoader struct {
	fs fs.FS
}

func NewTomlConfigLoader(fs fs.FS) *TomlConfigLoader {
	return &TomlConfigLoader{fs: fs}
}

func (t TomlConfigLoader) Load(name string) (core.Config, error) {
	content, err := readConfigFile(t.fs, name)
	if err != nil {
		return core.Config{}, err
	}

	var parsed tomlConfig
	md, err := toml.Decode(string(content), &parsed)
	if err != nil {
		return core.Config{}, fmt.Errorf("failed to parse config file '%s': %w", name, err)
	}
	for _, key := range requiredTomlKeys {
		if !md.IsDefined(key) {
			return core.Config{}, fmt.Errorf("failed to parse config file '%s': missing field `%s`", name, key)
		}
	}

	aliases := make([]string, 0, len(parsed.Queries))
	for alias := range parsed.Queries {
		aliases = append(aliases, alias)
	}
	sort.Sort(sortorder.Natural(aliases))

	queries := make([]core.Query, 0, len(aliases))
	for _, alias := range aliases {
		queries = append(queries, core.Query{Alias: alias, SQL: parsed.Queries[alias]})
	}

	warnReservedAliases(name, queries)

	return core.Config{
		Username: parsed.Username,
		DBName:   parsed.DBName,
		Queries:  queries,
	}, nil
}
