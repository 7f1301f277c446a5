package admission_test

import (
	"errors"
	"fmt"

	admission "github.com/kingfs/go-llm-admission"
)

func ExampleGet() {
	if m, ok := admission.Get("grok-superimage-1.0"); ok {
		fmt.Printf("Model ID: %s\n", m.ID())
		fmt.Printf("Provider: %s\n", m.Provider())
		fmt.Printf("Cost: %s\n", m.Cost())
	}
	// Output:
	// Model ID: grok-superimage-1.0
	// Provider: xAI
	// Cost: high
}

func ExampleQueryBuilder_List() {
	models := admission.Query().
		Has(admission.ModalityImageOut).
		MinCost(admission.CostHigh).
		List()

	for _, m := range models {
		fmt.Println(m.ID())
	}
	// Output:
	// grok-superimage-1.0
}

func ExampleGate_Admit() {
	gate := admission.NewGate(admission.Default(), nil)

	_, err := gate.Admit(&admission.GenerationRequest{
		Model:          "grok-superimage-1.0",
		Prompt:         "a cat in space",
		N:              1,
		Stream:         true,
		ResponseFormat: admission.FormatURL,
	})
	fmt.Println(errors.Is(err, admission.ErrIncompatibleStreamFormat))

	adm, _ := gate.Admit(&admission.GenerationRequest{
		Model:          "grok-superimage-1.0",
		Prompt:         "a cat in space",
		N:              1,
		ResponseFormat: admission.FormatURL,
	})
	fmt.Println(adm.Transport)
	// Output:
	// true
	// channel
}
