package admission

// Model is an interface for reading model metadata.
type Model interface {
	ID() string
	Name() string
	Provider() string

	IsImage() bool
	Cost() CostTier

	HasCapability(c Capability) bool
	Features() Capability
}

// Entry is one row of the model table supplied at startup.
type Entry struct {
	ID       string
	Name     string
	Provider string
	Cost     CostTier
	Features Capability
}

// modelData is the internal implementation of the Model interface.
type modelData struct {
	IDVal       string
	NameVal     string
	ProviderVal string
	CostVal     CostTier
	FeaturesVal Capability
}

func (m *modelData) ID() string                      { return m.IDVal }
func (m *modelData) Name() string                    { return m.NameVal }
func (m *modelData) Provider() string                { return m.ProviderVal }
func (m *modelData) IsImage() bool                   { return m.FeaturesVal.Has(ModalityImageOut) }
func (m *modelData) Cost() CostTier                  { return m.CostVal }
func (m *modelData) HasCapability(c Capability) bool { return m.FeaturesVal&c != 0 }
func (m *modelData) Features() Capability            { return m.FeaturesVal }

func newModelData(e Entry) *modelData {
	name := e.Name
	if name == "" {
		name = e.ID
	}
	return &modelData{
		IDVal:       e.ID,
		NameVal:     name,
		ProviderVal: e.Provider,
		CostVal:     e.Cost,
		FeaturesVal: e.Features,
	}
}
