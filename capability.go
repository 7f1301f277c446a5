package admission

import (
	"fmt"
	"sort"
	"strings"
)

// Capability represents a model's features or modalities using bitmasks.
type Capability uint64

const (
	// Modalities (0-15 bit)
	ModalityTextIn Capability = 1 << iota
	ModalityTextOut
	ModalityImageIn
	ModalityImageOut
	ModalityVideoOut
)

const (
	// Features (16-31 bit)
	CapStreaming Capability = 1 << (16 + iota)
	CapImageEdit
)

// Has checks if the capability set contains the given capability.
func (c Capability) Has(other Capability) bool {
	return c&other != 0
}

// HasAll reports whether every bit of other is set.
func (c Capability) HasAll(other Capability) bool {
	return c&other == other
}

var capabilityNames = map[string]Capability{
	"ModalityTextIn":   ModalityTextIn,
	"ModalityTextOut":  ModalityTextOut,
	"ModalityImageIn":  ModalityImageIn,
	"ModalityImageOut": ModalityImageOut,
	"ModalityVideoOut": ModalityVideoOut,
	"CapStreaming":     CapStreaming,
	"CapImageEdit":     CapImageEdit,
}

// ParseCapability resolves a capability constant name, as written in the
// model table, to its bit.
func ParseCapability(name string) (Capability, error) {
	if c, ok := capabilityNames[strings.TrimSpace(name)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown capability %q", name)
}

// Names returns the constant names of the bits set in c, sorted.
func (c Capability) Names() []string {
	var names []string
	for name, bit := range capabilityNames {
		if c.Has(bit) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// CostTier orders models by upstream cost.
type CostTier int

const (
	CostLow CostTier = iota
	CostMedium
	CostHigh
)

func (c CostTier) String() string {
	switch c {
	case CostLow:
		return "low"
	case CostMedium:
		return "medium"
	case CostHigh:
		return "high"
	default:
		return fmt.Sprintf("CostTier(%d)", int(c))
	}
}

// GoString renders the constant name, used by the table generator.
func (c CostTier) GoString() string {
	switch c {
	case CostMedium:
		return "CostMedium"
	case CostHigh:
		return "CostHigh"
	default:
		return "CostLow"
	}
}

// ParseCostTier accepts "low", "medium" or "high" in any case.
func ParseCostTier(s string) (CostTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return CostLow, nil
	case "medium":
		return CostMedium, nil
	case "high":
		return CostHigh, nil
	}
	return CostLow, fmt.Errorf("unknown cost tier %q", s)
}

// UnmarshalText lets CostTier be decoded from YAML and JSON strings.
func (c *CostTier) UnmarshalText(text []byte) error {
	v, err := ParseCostTier(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (c CostTier) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
