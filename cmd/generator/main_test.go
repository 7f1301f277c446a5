package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	admission "github.com/kingfs/go-llm-admission"
)

func TestGenerateCode_QuotesIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models_gen.go")
	entries := []admission.Entry{
		{ID: `odd"model\v1`, Provider: "xAI", Cost: admission.CostHigh, Features: admission.ModalityImageOut},
		{ID: "plain", Features: admission.ModalityTextOut},
	}
	if err := generateCode(path, entries); err != nil {
		t.Fatalf("generateCode: %v", err)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), path, src, 0); err != nil {
		t.Fatalf("generated file does not parse: %v\n%s", err, src)
	}
	if !strings.Contains(string(src), `"odd\"model\\v1": {`) {
		t.Errorf("expected escaped id in output:\n%s", src)
	}
	if !strings.Contains(string(src), "CostVal:     CostHigh") {
		t.Errorf("expected cost constant in output:\n%s", src)
	}
}
