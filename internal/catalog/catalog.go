package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/attune-cli/attune/internal/domain"
	"gopkg.in/yaml.v3"
)

// Catalog holds the read-only template and profile configuration for a
// process. It is built once at startup and never mutated afterwards.
type Catalog struct {
	templates []domain.InterventionTemplate
	templIdx  map[string]int
	profiles  map[string]domain.PersonalityProfile
	profOrder []string
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	c := &Catalog{
		templIdx: make(map[string]int),
		profiles: make(map[string]domain.PersonalityProfile),
	}
	for _, t := range builtinTemplates() {
		c.putTemplate(t)
	}
	for _, p := range builtinProfiles() {
		c.putProfile(p)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load builds the catalog from the built-ins plus every .json/.yaml/.yml
// file in dir, applied in lexical filename order. Entries with an existing
// ID replace the built-in in place, preserving its catalog position.
func Load(dir string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return c, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".json", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		schema, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", name, err)
		}
		if err := c.apply(schema); err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", name, err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadFile(path string) (*FileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema FileSchema
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	}
	return &schema, nil
}

func (c *Catalog) apply(schema *FileSchema) error {
	seen := make(map[string]bool)
	for _, tc := range schema.Templates {
		if seen[tc.ID] {
			return fmt.Errorf("duplicate template id %q", tc.ID)
		}
		seen[tc.ID] = true
		c.putTemplate(tc.toDomain())
	}
	seen = make(map[string]bool)
	for _, pc := range schema.Profiles {
		if seen[pc.TypeID] {
			return fmt.Errorf("duplicate profile type_id %q", pc.TypeID)
		}
		seen[pc.TypeID] = true
		c.putProfile(pc.toDomain())
	}
	return nil
}

func (c *Catalog) putTemplate(t domain.InterventionTemplate) {
	if i, ok := c.templIdx[t.TemplateID]; ok {
		c.templates[i] = t
		return
	}
	c.templIdx[t.TemplateID] = len(c.templates)
	c.templates = append(c.templates, t)
}

func (c *Catalog) putProfile(p domain.PersonalityProfile) {
	if _, ok := c.profiles[p.TypeID]; !ok {
		c.profOrder = append(c.profOrder, p.TypeID)
	}
	c.profiles[p.TypeID] = p
}

// Validate checks the assembled catalog. It fails fast on an empty template
// set or a missing default template so selection can never come up empty at
// call time.
func (c *Catalog) Validate() error {
	if len(c.templates) == 0 {
		return fmt.Errorf("catalog has no intervention templates")
	}
	if _, ok := c.templIdx[domain.DefaultTemplateID]; !ok {
		return fmt.Errorf("catalog is missing the %q fallback template", domain.DefaultTemplateID)
	}
	for i := range c.templates {
		if err := c.templates[i].Validate(); err != nil {
			return err
		}
	}
	if len(c.profiles) == 0 {
		return fmt.Errorf("catalog has no personality profiles")
	}
	for _, id := range c.profOrder {
		p := c.profiles[id]
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Templates returns the templates in catalog insertion order. Callers must
// not mutate the returned slice.
func (c *Catalog) Templates() []domain.InterventionTemplate {
	return c.templates
}

// Template returns the template with the given ID.
func (c *Catalog) Template(id string) (domain.InterventionTemplate, bool) {
	i, ok := c.templIdx[id]
	if !ok {
		return domain.InterventionTemplate{}, false
	}
	return c.templates[i], true
}

// Profile returns the built-in profile for the given personality type.
func (c *Catalog) Profile(typeID string) (domain.PersonalityProfile, bool) {
	p, ok := c.profiles[typeID]
	return p, ok
}

// ProfileIDs returns the known personality type keys in insertion order.
func (c *Catalog) ProfileIDs() []string {
	return c.profOrder
}
