package admission

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:generate go run ./cmd/generator -in data/models.yaml -out models_gen.go

// staticRegistry stores all static model data.
// This is populated in models_gen.go.
var staticRegistry = map[string]*modelData{}

// Registry is a read-only index of model descriptors. It is built once and
// safe for concurrent reads without locking.
type Registry struct {
	models map[string]*modelData
}

// NewRegistry builds a registry from a model table supplied at startup.
func NewRegistry(entries []Entry) (*Registry, error) {
	models := make(map[string]*modelData, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("model table row %d: empty id", i)
		}
		if _, dup := models[e.ID]; dup {
			return nil, fmt.Errorf("model table row %d: duplicate id %q", i, e.ID)
		}
		models[e.ID] = newModelData(e)
	}
	if len(models) == 0 {
		return nil, errors.New("model table is empty")
	}
	return &Registry{models: models}, nil
}

// Default returns the registry backed by the generated static table.
func Default() *Registry {
	return &Registry{models: staticRegistry}
}

// Get retrieves a model by its exact, case-sensitive ID.
func (r *Registry) Get(id string) (Model, bool) {
	if m, ok := r.models[id]; ok {
		return m, true
	}
	return nil, false
}

// Len returns the number of registered models.
func (r *Registry) Len() int { return len(r.models) }

// IDs returns every registered identifier in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Query starts a new query builder over r.
func (r *Registry) Query() *QueryBuilder {
	return &QueryBuilder{registry: r}
}

// Get retrieves a model from the default registry.
func Get(id string) (Model, bool) {
	return Default().Get(id)
}

// Query starts a new query builder over the default registry.
func Query() *QueryBuilder {
	return Default().Query()
}

// QueryBuilder provides a chainable API for filtering models.
type QueryBuilder struct {
	registry   *Registry
	provider   string
	capability Capability
	minCost    CostTier
}

// Provider filters models by provider name.
func (q *QueryBuilder) Provider(p string) *QueryBuilder {
	q.provider = p
	return q
}

// Has filters models by capability.
func (q *QueryBuilder) Has(cap Capability) *QueryBuilder {
	q.capability |= cap
	return q
}

// MinCost keeps models whose cost tier is at least c.
func (q *QueryBuilder) MinCost(c CostTier) *QueryBuilder {
	q.minCost = c
	return q
}

// List returns the models matching the query criteria, sorted by ID.
func (q *QueryBuilder) List() []Model {
	var results []Model
	for _, m := range q.registry.models {
		if q.provider != "" && !strings.EqualFold(m.ProviderVal, q.provider) {
			continue
		}
		if q.capability != 0 && !m.FeaturesVal.HasAll(q.capability) {
			continue
		}
		if m.CostVal < q.minCost {
			continue
		}
		results = append(results, m)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID() < results[j].ID()
	})
	return results
}
