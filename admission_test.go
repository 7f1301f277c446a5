package admission

import (
	"errors"
	"sync"
	"testing"
)

func TestGate_Admit(t *testing.T) {
	g := NewGate(Default(), nil)

	adm, err := g.Admit(validRequest(superImage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adm.Model.ID() != superImage || adm.Transport != TransportChannel {
		t.Errorf("unexpected admission: %s over %s", adm.Model.ID(), adm.Transport)
	}

	adm, err = g.Admit(validRequest("grok-3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adm.Transport != TransportOneShot {
		t.Errorf("expected oneshot for grok-3, got %s", adm.Transport)
	}
}

func TestGate_RejectsBeforeSelecting(t *testing.T) {
	g := NewGate(Default(), nil)

	if _, err := g.Admit(validRequest("ghost")); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected unknown model, got %v", err)
	}

	req := validRequest(superImage)
	req.Stream = true
	req.ResponseFormat = FormatURL
	adm, err := g.Admit(req)
	if adm != nil || !errors.Is(err, ErrIncompatibleStreamFormat) {
		t.Errorf("expected rejection, got %v, %v", adm, err)
	}
}

func TestGate_ConcurrentAdmit(t *testing.T) {
	g := NewGate(Default(), nil)
	ids := Default().IDs()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := g.Admit(validRequest(id)); err != nil {
				t.Errorf("%s: %v", id, err)
			}
		}(ids[i%len(ids)])
	}
	wg.Wait()
}
