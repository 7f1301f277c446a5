package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	admission "github.com/kingfs/go-llm-admission"
)

// ModelTable is the on-disk model table.
type ModelTable struct {
	Models map[string]ModelRow `yaml:"models"`
}

// ModelRow is one model in the table. The map key is used when ID is empty.
type ModelRow struct {
	ID       string             `yaml:"id"`
	Name     string             `yaml:"name"`
	Provider string             `yaml:"provider"`
	Cost     admission.CostTier `yaml:"cost"`
	Features []string           `yaml:"features"`
}

// LoadModelsFile reads a model table from path.
func LoadModelsFile(path string) ([]admission.Entry, error) {
	return LoadModels(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadModels reads a model table from fsys and returns its entries sorted
// by ID.
func LoadModels(fsys fs.FS, name string) ([]admission.Entry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	var table ModelTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	entries := make([]admission.Entry, 0, len(table.Models))
	for key, row := range table.Models {
		if row.ID == "" {
			row.ID = key
		}
		var features admission.Capability
		for _, f := range row.Features {
			c, err := admission.ParseCapability(f)
			if err != nil {
				return nil, fmt.Errorf("model %s: %w", row.ID, err)
			}
			features |= c
		}
		entries = append(entries, admission.Entry{
			ID:       row.ID,
			Name:     row.Name,
			Provider: NormalizeProvider(row.Provider),
			Cost:     row.Cost,
			Features: features,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// NormalizeProvider maps provider spellings to their display name.
func NormalizeProvider(p string) string {
	lower := strings.ToLower(strings.TrimSpace(p))
	switch lower {
	case "":
		return ""
	case "xai", "x-ai", "grok":
		return "xAI"
	case "openai":
		return "OpenAI"
	case "google":
		return "Google"
	case "stability", "stabilityai":
		return "Stability AI"
	case "black-forest-labs", "bfl":
		return "Black Forest Labs"
	default:
		caser := cases.Title(language.English)
		return caser.String(lower)
	}
}
