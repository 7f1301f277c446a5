package admission

// Transport is the upstream delivery mechanism chosen for a request.
type Transport int

const (
	// TransportOneShot is a single request/response exchange.
	TransportOneShot Transport = iota
	// TransportChannel is a persistent bidirectional connection.
	TransportChannel
)

func (t Transport) String() string {
	if t == TransportChannel {
		return "channel"
	}
	return "oneshot"
}

// Selector picks the upstream transport for a model.
type Selector struct {
	registry *Registry
	policy   ChannelPolicy
}

// NewSelector returns a Selector backed by reg. A nil policy defaults to
// CapabilityPolicy.
func NewSelector(reg *Registry, policy ChannelPolicy) *Selector {
	if policy == nil {
		policy = CapabilityPolicy{}
	}
	return &Selector{registry: reg, policy: policy}
}

// RequiresChannelTransport reports whether id must always be served over the
// channel transport, whatever the request's stream flag says.
func (s *Selector) RequiresChannelTransport(id string) (bool, error) {
	m, ok := s.registry.Get(id)
	if !ok {
		return false, &UnknownModelError{Model: id}
	}
	return s.policy.Matches(m), nil
}

// Select returns the transport for a request that has already been validated.
func (s *Selector) Select(req *GenerationRequest) (Transport, error) {
	if req == nil {
		return TransportOneShot, &InvalidFieldError{Field: "request", Reason: "must not be null"}
	}
	channel, err := s.RequiresChannelTransport(req.Model)
	if err != nil {
		return TransportOneShot, err
	}
	if channel || req.Stream {
		return TransportChannel, nil
	}
	return TransportOneShot, nil
}
