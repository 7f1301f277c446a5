package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	admission "github.com/kingfs/go-llm-admission"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Validates a JSON generation request and prints the chosen transport.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Check,
}

// Check is the cobra handler for `admit check`.
func Check(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	req, err := decodeRequest(in)
	if err != nil {
		return err
	}

	gate := admission.NewGate(registry, cfg.Policy())
	adm, err := gate.Admit(req)
	if err != nil {
		if admission.IsValidationError(err) {
			return fmt.Errorf("rejected: %w", err)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "model=%s provider=%s cost=%s transport=%s\n",
		adm.Model.ID(), adm.Model.Provider(), adm.Model.Cost(), adm.Transport)
	return nil
}

func decodeRequest(r io.Reader) (*admission.GenerationRequest, error) {
	var req admission.GenerationRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &req, nil
}
