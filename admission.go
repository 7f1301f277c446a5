// Package admission resolves model capabilities for inbound generation
// requests, validates them, and picks the upstream transport.
package admission

// Admission is the outcome of a successful Gate.Admit call.
type Admission struct {
	Model     Model
	Transport Transport
}

// Gate runs validation and transport selection against one registry and
// one channel policy.
type Gate struct {
	validator *Validator
	selector  *Selector
}

// NewGate wires a Validator and a Selector that share reg and policy.
func NewGate(reg *Registry, policy ChannelPolicy) *Gate {
	if policy == nil {
		policy = CapabilityPolicy{}
	}
	return &Gate{
		validator: NewValidator(reg, policy),
		selector:  NewSelector(reg, policy),
	}
}

// Selector returns the gate's transport selector.
func (g *Gate) Selector() *Selector { return g.selector }

// Admit validates req and, only if it passes, selects its transport.
func (g *Gate) Admit(req *GenerationRequest) (*Admission, error) {
	m, err := g.validator.resolve(req)
	if err != nil {
		return nil, err
	}
	t, err := g.selector.Select(req)
	if err != nil {
		return nil, err
	}
	return &Admission{Model: m, Transport: t}, nil
}
