package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	admission "github.com/kingfs/go-llm-admission"
)

var (
	providerFilter string
	imageOnly      bool
	minCost        string
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Lists registered models and their transport requirement.",
	Args:  cobra.NoArgs,
	RunE:  Models,
}

func init() {
	modelsCmd.Flags().StringVar(&providerFilter, "provider", "", "only list models from this provider")
	modelsCmd.Flags().BoolVar(&imageOnly, "image", false, "only list image models")
	modelsCmd.Flags().StringVar(&minCost, "min-cost", "low", "lowest cost tier to list (low, medium, high)")
}

// Models is the cobra handler for `admit models`.
func Models(cmd *cobra.Command, _ []string) error {
	tier, err := admission.ParseCostTier(minCost)
	if err != nil {
		return err
	}
	q := registry.Query().Provider(providerFilter).MinCost(tier)
	if imageOnly {
		q = q.Has(admission.ModalityImageOut)
	}

	sel := admission.NewGate(registry, cfg.Policy()).Selector()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROVIDER\tCOST\tIMAGE\tCHANNEL\tFEATURES")
	for _, m := range q.List() {
		channel, err := sel.RequiresChannelTransport(m.ID())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%s\n",
			m.ID(), m.Provider(), m.Cost(), m.IsImage(), channel,
			strings.Join(m.Features().Names(), ","))
	}
	return w.Flush()
}
