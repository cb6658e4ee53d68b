package translate

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	chaterrors "github.com/mosaicmc/chatrender/pkg/errors"
)

// Table maps translation keys to placeholder-bearing template strings
// ("%s" or "%N$s"). It is supplied at startup and never mutated; lookups
// from concurrent renders need no locking.
type Table map[string]string

// Lookup returns the template for key.
func (t Table) Lookup(key string) (string, bool) {
	template, ok := t[key]
	return template, ok
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadTable reads a YAML locale file mapping translation keys to templates.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chaterrors.NewParseError(path, 0, err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, chaterrors.NewParseError(path, extractLine(err), err)
	}

	return table, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
