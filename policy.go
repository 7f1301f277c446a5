package admission

// ChannelPolicy decides which models are served exclusively over the
// persistent bidirectional channel.
type ChannelPolicy interface {
	Matches(m Model) bool
}

// CapabilityPolicy matches every high-cost image model, so new models that
// declare the same capabilities inherit the channel requirement.
type CapabilityPolicy struct{}

func (CapabilityPolicy) Matches(m Model) bool {
	return m.IsImage() && m.Cost() == CostHigh
}

// NamePolicy matches an explicit set of model IDs.
type NamePolicy map[string]struct{}

// NewNamePolicy builds a NamePolicy from ids.
func NewNamePolicy(ids ...string) NamePolicy {
	p := make(NamePolicy, len(ids))
	for _, id := range ids {
		p[id] = struct{}{}
	}
	return p
}

func (p NamePolicy) Matches(m Model) bool {
	_, ok := p[m.ID()]
	return ok
}

// AnyPolicy matches when at least one of its members does.
type AnyPolicy []ChannelPolicy

func (p AnyPolicy) Matches(m Model) bool {
	for _, sub := range p {
		if sub.Matches(m) {
			return true
		}
	}
	return false
}
