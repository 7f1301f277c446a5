package admission

import "testing"

func TestModelDataGetters(t *testing.T) {
	m := &modelData{
		IDVal:       "test/model",
		NameVal:     "Test Model",
		ProviderVal: "TestProvider",
		CostVal:     CostHigh,
		FeaturesVal: ModalityTextIn | ModalityImageOut,
	}

	if m.ID() != "test/model" {
		t.Error("Getter ID fail")
	}
	if m.Name() != "Test Model" {
		t.Error("Getter Name fail")
	}
	if m.Provider() != "TestProvider" {
		t.Error("Getter Provider fail")
	}
	if m.Cost() != CostHigh {
		t.Error("Getter Cost fail")
	}
	if !m.IsImage() {
		t.Error("Getter IsImage fail")
	}
	if !m.HasCapability(ModalityTextIn) {
		t.Error("Getter HasCapability fail")
	}
	if m.Features() != ModalityTextIn|ModalityImageOut {
		t.Error("Getter Features fail")
	}
}

func TestNewModelData_DefaultsName(t *testing.T) {
	m := newModelData(Entry{ID: "bare", Features: ModalityTextOut})
	if m.Name() != "bare" {
		t.Errorf("expected name to fall back to id, got %q", m.Name())
	}
	if m.IsImage() {
		t.Error("text-only model must not report IsImage")
	}
}
