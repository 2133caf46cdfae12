package loaders

import (
	"fmt"
	"io/fs"

	"github.com/reaandrew/sqlpick/core"
	"gopkg.in/yaml.v3"
)

// Pointer fields tell a missing key apart from an empty value.
type yamlQuery struct {
	Alias *string `yaml:"alias"`
	SQL   *string `yaml:"sql"`
}

type yamlConfig struct {
	Username string       `yaml:"username"`
	DBName   string       `yaml:"dbname"`
	Queries  *[]yamlQuery `yaml:"queries"`
}

// YamlConfigLoader reads an ordered list of queries:
//
//	queries:
//	  - alias: users
//	    sql: SELECT * FROM users
type YamlConfigLoader struct {
	fs fs.FS
}

func NewYamlConfigLoader(fs fs.FS) *YamlConfigLoader {
	return &YamlConfigLoader{fs: fs}
}

func (y YamlConfigLoader) Load(name string) (core.Config, error) {
	content, err := readConfigFile(y.fs, name)
	if err != nil {
		return core.Config{}, err
	}

	var parsed yamlConfig
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		return core.Config{}, fmt.Errorf("failed to parse config file '%s': %w", name, err)
	}

	queries, err := parsed.toQueries()
	if err != nil {
		return core.Config{}, fmt.Errorf("failed to parse config file '%s': %w", name, err)
	}

	warnReservedAliases(name, queries)

	return core.Config{
		Username: parsed.Username,
		DBName:   parsed.DBName,
		Queries:  queries,
	}, nil
}

func (c yamlConfig) toQueries() ([]core.Query, error) {
	if c.Queries == nil {
		return nil, fmt.Errorf("missing field `queries`")
	}

	queries := make([]core.Query, 0, len(*c.Queries))
	for i, entry := range *c.Queries {
		if entry.Alias == nil {
			return nil, fmt.Errorf("queries[%d]: missing field `alias`", i)
		}
		if entry.SQL == nil {
			return nil, fmt.Errorf("queries[%d]: missing field `sql`", i)
		}
		queries = append(queries, core.Query{Alias: *entry.Alias, SQL: *entry.SQL})
	}
	return queries, nil
}
