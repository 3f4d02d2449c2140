package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of rules/categorization-rules.yaml.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads an ordered rule list from a YAML file.
// An empty rule list yields DefaultRules.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	if len(f.Rules) == 0 {
		return DefaultRules(), nil
	}

	for i, r := range f.Rules {
		if r.Keyword == "" {
			return nil, fmt.Errorf("rule %d: empty keyword", i+1)
		}
		if !r.Category.Valid() {
			return nil, fmt.Errorf("rule %d (%s): unknown category %q", i+1, r.Keyword, r.Category)
		}
	}
	return f.Rules, nil
}

// SaveRules writes an ordered rule list to a YAML file.
func SaveRules(path string, rules []Rule) error {
	data, err := yaml.Marshal(File{Rules: rules})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
