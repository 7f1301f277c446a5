package admission

import (
	"fmt"
	"strings"
)

// Validator applies structural and cross-field rules to generation requests.
type Validator struct {
	registry *Registry
	policy   ChannelPolicy
}

// NewValidator returns a Validator backed by reg. A nil policy defaults to
// CapabilityPolicy.
func NewValidator(reg *Registry, policy ChannelPolicy) *Validator {
	if policy == nil {
		policy = CapabilityPolicy{}
	}
	return &Validator{registry: reg, policy: policy}
}

// Validate checks req and returns nil when it may be admitted. The request is
// never modified.
func (v *Validator) Validate(req *GenerationRequest) error {
	_, err := v.resolve(req)
	return err
}

func (v *Validator) resolve(req *GenerationRequest) (Model, error) {
	if req == nil {
		return nil, &InvalidFieldError{Field: "request", Reason: "must not be null"}
	}
	m, ok := v.registry.Get(req.Model)
	if !ok {
		return nil, &UnknownModelError{Model: req.Model}
	}

	if req.N < 1 {
		return nil, &InvalidFieldError{Field: "n", Reason: fmt.Sprintf("must be >= 1, got %d", req.N)}
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, &InvalidFieldError{Field: "prompt", Reason: "must not be empty"}
	}
	if _, err := ParseResponseFormat(string(req.ResponseFormat)); err != nil {
		return nil, err
	}

	// Channel-only models stream inline payloads, never URLs.
	if req.Stream && v.policy.Matches(m) && req.ResponseFormat != FormatB64JSON {
		return nil, &IncompatibleStreamFormatError{Model: req.Model, Format: req.ResponseFormat}
	}
	return m, nil
}
