package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingfs/go-llm-admission/proxy"
)

// transports holds the upstream transports built for each configured proxy.
var transports = proxy.NewTransportCache()

var proxyCmd = &cobra.Command{
	Use:   "proxy [url]",
	Short: "Prints the normalized form of a proxy URL (defaults to the configured one).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Proxy,
}

// Proxy is the cobra handler for `admit proxy`.
func Proxy(cmd *cobra.Command, args []string) error {
	raw := cfg.ProxyURL
	if len(args) == 1 {
		raw = args[0]
	}

	out := cmd.OutOrStdout()
	normalized, ok := proxy.Normalize(raw)
	if !ok {
		fmt.Fprintln(out, "no proxy configured")
		return nil
	}
	proxies := proxy.BuildTransportProxyMap(normalized)
	fmt.Fprintf(out, "http=%s\nhttps=%s\n", proxies["http"], proxies["https"])

	// Surface schemes the upstream transport cannot dial.
	_, err := transports.Get(normalized)
	return err
}
