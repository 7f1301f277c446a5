package main

import (
	"flag"
	"os"
	"strings"
	"text/template"
	"time"

	admission "github.com/kingfs/go-llm-admission"
	"github.com/kingfs/go-llm-admission/config"
	"github.com/kingfs/go-llm-admission/logging"
)

func main() {
	in := flag.String("in", "data/models.yaml", "model table to read")
	out := flag.String("out", "models_gen.go", "Go file to write")
	flag.Parse()

	log := logging.Log
	log.Info("Starting admission-gen...")

	entries, err := config.LoadModelsFile(*in)
	if err != nil {
		log.Fatalf("Failed to load model table: %v", err)
	}
	// Reject duplicate or empty IDs before writing anything.
	if _, err := admission.NewRegistry(entries); err != nil {
		log.Fatalf("Invalid model table: %v", err)
	}
	log.Infof("Loaded %d models from %s", len(entries), *in)

	if err := generateCode(*out, entries); err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}
	log.Info("Generator finished successfully.")
}

const modelTemplate = `// Code generated by admission-gen. DO NOT EDIT.
// Generated at: {{ .GeneratedAt }}

package admission

func init() {
	staticRegistry = map[string]*modelData{
		{{- range .Models }}
		{{ printf "%q" .ID }}: {
			IDVal:       {{ printf "%q" .ID }},
			NameVal:     {{ printf "%q" .Name }},
			ProviderVal: {{ printf "%q" .Provider }},
			CostVal:     {{ printf "%#v" .Cost }},
			FeaturesVal: {{ features .Features }},
		},
		{{- end }}
	}
}
`

func features(c admission.Capability) string {
	names := c.Names()
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, " | ")
}

func generateCode(path string, entries []admission.Entry) error {
	tmpl, err := template.New("gen").Funcs(template.FuncMap{"features": features}).Parse(modelTemplate)
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].Name == "" {
			entries[i].Name = entries[i].ID
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct {
		GeneratedAt string
		Models      []admission.Entry
	}{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Models:      entries,
	}

	return tmpl.Execute(f, data)
}
