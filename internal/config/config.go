package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// CurrentVersion is written by Marshal when Version is empty.
const CurrentVersion = "1"

// Config represents a form definition (~/.panseq/form.yaml).
type Config struct {
	Version string  `yaml:"version"`
	Lists   []List  `yaml:"lists"`
	Fields  []Field `yaml:"fields,omitempty"`
	Tabs    []Tab   `yaml:"tabs,omitempty"`
}

// List is one transfer pair: the selectable items and, optionally, the ids
// that start out in the target.
type List struct {
	Name     string   `yaml:"name"`
	Title    string   `yaml:"title,omitempty"`
	Items    []Item   `yaml:"items"`
	Selected []string `yaml:"selected,omitempty"`
}

// Item is one selectable entry. Label defaults to ID when displayed.
type Item struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label,omitempty"`
}

// Field maps a request field to the lists whose targets feed it.
type Field struct {
	Name  string   `yaml:"name"`
	Lists []string `yaml:"lists"`
}

// Tab is one page of the form. Its position decides the run mode.
type Tab struct {
	Title string   `yaml:"title"`
	Lists []string `yaml:"lists"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid form definition")

// Parse parses form definition bytes into a Config and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing form definition: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a form definition file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading form definition: %w", err)
	}
	return Parse(data)
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	return yaml.Marshal(cfg)
}

// List returns the list with the given name.
func (c Config) List(name string) (List, bool) {
	for _, l := range c.Lists {
		if l.Name == name {
			return l, true
		}
	}
	return List{}, false
}

// Validate checks that list names are unique, item ids are non-empty and
// unique per list, selected ids name items of their list, and that fields
// and tabs only reference known lists.
func (c Config) Validate() error {
	known := make(map[string]bool, len(c.Lists))
	for _, l := range c.Lists {
		if l.Name == "" {
			return fmt.Errorf("%w: list without a name", ErrInvalid)
		}
		if known[l.Name] {
			return fmt.Errorf("%w: list %q defined twice", ErrInvalid, l.Name)
		}
		known[l.Name] = true

		ids := make(map[string]bool, len(l.Items))
		for i, it := range l.Items {
			if it.ID == "" {
				return fmt.Errorf("%w: list %q item %d has no id", ErrInvalid, l.Name, i)
			}
			if ids[it.ID] {
				return fmt.Errorf("%w: list %q has duplicate id %q", ErrInvalid, l.Name, it.ID)
			}
			ids[it.ID] = true
		}
		for _, id := range l.Selected {
			if !ids[id] {
				return fmt.Errorf("%w: list %q selects unknown id %q", ErrInvalid, l.Name, id)
			}
		}
	}
	for _, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field without a name", ErrInvalid)
		}
		for _, name := range f.Lists {
			if !known[name] {
				return fmt.Errorf("%w: field %q references unknown list %q", ErrInvalid, f.Name, name)
			}
		}
	}
	for _, t := range c.Tabs {
		for _, name := range t.Lists {
			if !known[name] {
				return fmt.Errorf("%w: tab %q references unknown list %q", ErrInvalid, t.Title, name)
			}
		}
	}
	return nil
}
