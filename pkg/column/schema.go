package column

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
)

// schemaFile is the on-disk YAML shape of a table schema: per-type option
// defaults plus the ordered column list.
type schemaFile struct {
	Defaults map[string]map[string]any `yaml:"defaults"`
	Columns  []schemaColumn            `yaml:"columns"`
}

type schemaColumn struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Title     string         `yaml:"title"`
	Type      string         `yaml:"type"`
	Editable  bool           `yaml:"editable"`
	Hidden    bool           `yaml:"hidden"`
	Index     bool           `yaml:"index"`
	Stretched bool           `yaml:"stretched"`
	Required  bool           `yaml:"required"`
	Width     int            `yaml:"width"`
	Help      string         `yaml:"help"`
	Alignment string         `yaml:"alignment"`
	Default   any            `yaml:"default"`
	Icon      string         `yaml:"icon"`
	Options   map[string]any `yaml:"options"`
}

// LoadSchema reads a YAML schema file into column definitions.
func LoadSchema(path string, lgr logr.Logger) ([]Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return LoadSchemaBytes(data, lgr)
}

// LoadSchemaBytes decodes a YAML schema document into column definitions.
// Per-type defaults under the top-level "defaults" block merge beneath each
// column's own options; unknown type names are kept (kind resolution falls
// back to object later) but logged here.
func LoadSchemaBytes(data []byte, lgr logr.Logger) ([]Props, error) {
	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if len(file.Columns) == 0 {
		return nil, fmt.Errorf("schema defines no columns")
	}

	seen := make(map[string]bool, len(file.Columns))
	props := make([]Props, 0, len(file.Columns))
	for i, sc := range file.Columns {
		if sc.ID == "" {
			return nil, fmt.Errorf("column %d is missing an id", i)
		}
		if seen[sc.ID] {
			return nil, fmt.Errorf("duplicate column id %q", sc.ID)
		}
		seen[sc.ID] = true

		if sc.Type != "" {
			if _, known := LookupCreator(sc.Type); !known {
				lgr.Info("schema references unknown column type",
					"column", sc.ID, "type", sc.Type)
			}
		}

		title := sc.Title
		if title == "" {
			title = sc.Name
		}
		name := sc.Name
		if name == "" {
			name = sc.ID
		}
		props = append(props, Props{
			ID:               sc.ID,
			Name:             name,
			Title:            title,
			IndexNumber:      i,
			IsEditable:       sc.Editable,
			IsHidden:         sc.Hidden,
			IsIndex:          sc.Index,
			IsStretched:      sc.Stretched,
			IsRequired:       sc.Required,
			Width:            sc.Width,
			Help:             sc.Help,
			CustomType:       sc.Type,
			TypeOptions:      MergeParameters(file.Defaults[sc.Type], sc.Options),
			ContentAlignment: Alignment(sc.Alignment),
			DefaultValue:     sc.Default,
			Icon:             sc.Icon,
		})
	}
	return props, nil
}
