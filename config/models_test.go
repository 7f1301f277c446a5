package config

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admission "github.com/kingfs/go-llm-admission"
)

func TestLoadModels(t *testing.T) {
	entries, err := LoadModelsFile("testdata/models.yaml")
	require.NoError(t, err)

	want := []admission.Entry{
		{
			ID:       "acme-draw-xl",
			Name:     "Acme Draw XL",
			Provider: "Acme Labs",
			Cost:     admission.CostHigh,
			Features: admission.ModalityTextIn | admission.ModalityImageOut,
		},
		{
			ID:       "acme-text",
			Provider: "OpenAI",
			Cost:     admission.CostLow,
			Features: admission.ModalityTextIn | admission.ModalityTextOut,
		},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("LoadModels mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadModels_BundledTableMatchesGenerated(t *testing.T) {
	entries, err := LoadModelsFile("../data/models.yaml")
	require.NoError(t, err)

	reg := admission.Default()
	require.Len(t, entries, reg.Len())
	for _, e := range entries {
		m, ok := reg.Get(e.ID)
		require.True(t, ok, "model %s missing from generated table; run go generate", e.ID)
		assert.Equal(t, e.Name, m.Name(), e.ID)
		assert.Equal(t, e.Provider, m.Provider(), e.ID)
		assert.Equal(t, e.Cost, m.Cost(), e.ID)
		assert.Equal(t, e.Features, m.Features(), e.ID)
	}
}

func TestLoadModels_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown feature": "models:\n  m:\n    features: [ModalityTelepathy]\n",
		"unknown cost":    "models:\n  m:\n    cost: priceless\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{"models.yaml": &fstest.MapFile{Data: []byte(body)}}
			_, err := LoadModels(fsys, "models.yaml")
			assert.Error(t, err)
		})
	}

	_, err := LoadModels(fstest.MapFS{}, "missing.yaml")
	assert.Error(t, err)
}

func TestNormalizeProvider(t *testing.T) {
	tests := map[string]string{
		"xai":          "xAI",
		"X-AI":         "xAI",
		"openai":       "OpenAI",
		"bfl":          "Black Forest Labs",
		"midjourney":   "Midjourney",
		"  acme labs ": "Acme Labs",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeProvider(in), in)
	}
}
