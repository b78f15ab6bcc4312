package signals

import (
	"fmt"
	"os"

	v1 "github.com/ventus-lab/ventus/internal/api/v1"
	coreagg "github.com/ventus-lab/ventus/internal/core/aggregation"
	"gopkg.in/yaml.v3"
)

// Catalog describes the signals seeded into the target database: every base
// field crossed with every statistic.
type Catalog struct {
	Base  []string `yaml:"base"`
	Stats []string `yaml:"stats"`
}

// DefaultCatalog covers the measurement fields of the data API.
func DefaultCatalog() Catalog {
	return Catalog{
		Base:  append([]string(nil), v1.MeasurementFields...),
		Stats: append([]string(nil), coreagg.Stats...),
	}
}

// LoadCatalog reads a YAML catalog. An empty path returns DefaultCatalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read signal catalog %q: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse signal catalog %q: %w", path, err)
	}
	if len(c.Stats) == 0 {
		c.Stats = append([]string(nil), coreagg.Stats...)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("signal catalog %q: %w", path, err)
	}
	return c, nil
}

// Validate rejects empty catalogs and unknown statistics.
func (c Catalog) Validate() error {
	if len(c.Base) == 0 {
		return fmt.Errorf("base must list at least one field")
	}
	for _, b := range c.Base {
		if b == "" {
			return fmt.Errorf("base contains an empty field name")
		}
	}
	for _, s := range c.Stats {
		if !coreagg.ValidOperator(s) {
			return fmt.Errorf("unknown stat %q", s)
		}
	}
	return nil
}

// Names expands the catalog into signal names, base-major.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.Base)*len(c.Stats))
	for _, b := range c.Base {
		for _, s := range c.Stats {
			names = append(names, coreagg.ColumnName(b, s))
		}
	}
	return names
}
