package classifier

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// rulesFile is the structure of the classification rules YAML file:
//
//	classification:
//	  - type: asset
//	    subclass: cash
//	    keywords: [CAJA, PETTY]
type rulesFile struct {
	Classification []Rule `yaml:"classification"`
}

// FindRulesFile looks for a rules file in the standard locations: the path
// itself, ./config/, and ~/.config/finanalyzer/.
func FindRulesFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "finanalyzer", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadRules reads extra classification rules from a YAML file. A missing file
// is not an error: the built-in table alone is a valid configuration.
func LoadRules(filename string) ([]Rule, error) {
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := FindRulesFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return []Rule{}, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var parsed rulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}

	for _, rule := range parsed.Classification {
		if rule.Type == "" || rule.SubClass == "" {
			return nil, fmt.Errorf("rules file %s: every rule needs a type and a subclass", filePath)
		}
	}

	return parsed.Classification, nil
}

// MergeRules places custom rules ahead of the built-in table so they win on
// first match, keeping the table extensible without touching call sites.
func MergeRules(custom, builtin []Rule) []Rule {
	merged := make([]Rule, 0, len(custom)+len(builtin))
	merged = append(merged, custom...)
	merged = append(merged, builtin...)
	return merged
}
