package admission

import (
	"errors"
	"testing"
)

func TestRequiresChannelTransport(t *testing.T) {
	s := NewSelector(Default(), nil)

	got, err := s.RequiresChannelTransport(superImage)
	if err != nil || !got {
		t.Fatalf("expected %s to require the channel, got %t, %v", superImage, got, err)
	}

	for _, id := range []string{"grok-3", "grok-4-heavy", "grok-imagine-1.0"} {
		got, err := s.RequiresChannelTransport(id)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", id, err)
		}
		if got {
			t.Errorf("%s: expected no channel requirement", id)
		}
	}

	_, err = s.RequiresChannelTransport("grok-superimage-9")
	var unknown *UnknownModelError
	if !errors.As(err, &unknown) || unknown.Model != "grok-superimage-9" {
		t.Errorf("expected UnknownModelError echoing the id, got %v", err)
	}
}

func TestSelect(t *testing.T) {
	s := NewSelector(Default(), nil)
	tests := []struct {
		model  string
		stream bool
		want   Transport
	}{
		{superImage, false, TransportChannel},
		{superImage, true, TransportChannel},
		{"grok-imagine-1.0", false, TransportOneShot},
		{"grok-imagine-1.0", true, TransportChannel},
		{"grok-3", false, TransportOneShot},
	}
	for _, tt := range tests {
		req := validRequest(tt.model)
		req.Stream = tt.stream
		got, err := s.Select(req)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.model, err)
		}
		if got != tt.want {
			t.Errorf("%s stream=%t: got %s, want %s", tt.model, tt.stream, got, tt.want)
		}
	}

	if _, err := s.Select(validRequest("missing")); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected unknown model, got %v", err)
	}
	if _, err := s.Select(nil); !errors.Is(err, ErrInvalidField) {
		t.Errorf("expected invalid field for nil request, got %v", err)
	}
}

func TestAnyPolicy(t *testing.T) {
	reg := Default()
	p := AnyPolicy{CapabilityPolicy{}, NewNamePolicy("grok-3")}
	for id, want := range map[string]bool{superImage: true, "grok-3": true, "grok-4": false} {
		m, _ := reg.Get(id)
		if got := p.Matches(m); got != want {
			t.Errorf("%s: got %t, want %t", id, got, want)
		}
	}
}
