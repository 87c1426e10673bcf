package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configFileName is looked up in the working directory and its parents.
const configFileName = ".prttl.toml"

// fileConfig mirrors the option fields that may be set from a config
// file. Pointer fields distinguish "absent" from a zero value so flags
// keep precedence over the file and the file over built-in defaults.
type fileConfig struct {
	Indentation            *int     `toml:"indentation"`
	SingleEntryOnNewLine   *bool    `toml:"single_entry_on_new_line"`
	Force                  *bool    `toml:"force"`
	SortingIDs             *bool    `toml:"sorting_ids"`
	SPARQLSyntax           *bool    `toml:"sparql_syntax"`
	LabelAllBlankNodes     *bool    `toml:"label_all_blank_nodes"`
	Canonicalize           *bool    `toml:"canonicalize"`
	WarnUnsupportedNumbers *bool    `toml:"warn_unsupported_numbers"`
	PredicateOrder         []string `toml:"predicate_order"`
	SubjectTypeOrder       []string `toml:"subject_type_order"`

	// Presets defines custom rank lists the order entries can reference
	// as "@name".
	Presets presetsConfig `toml:"presets"`
}

type presetsConfig struct {
	PredicateOrder   map[string][]string `toml:"predicate_order"`
	SubjectTypeOrder map[string][]string `toml:"subject_type_order"`
}

// loadConfig finds and parses the nearest config file, walking from
// dir towards the filesystem root. A missing file is not an error.
func loadConfig(dir string) (*fileConfig, string, error) {
	for {
		path := filepath.Join(dir, configFileName)
		data, err := os.ReadFile(path)
		if err == nil {
			var cfg fileConfig
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return nil, path, err
			}
			return &cfg, path, nil
		}
		if !os.IsNotExist(err) {
			return nil, path, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}
