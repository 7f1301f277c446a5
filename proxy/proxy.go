// Package proxy normalizes outbound proxy URLs so that SOCKS proxies resolve
// destination hostnames on the proxy side, and builds HTTP transports from
// them.
package proxy

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kingfs/go-llm-admission/logging"
)

// remoteDNS maps SOCKS schemes that resolve locally to their variants that
// let the proxy server resolve the destination.
var remoteDNS = map[string]string{
	"socks5": "socks5h",
	"socks4": "socks4a",
}

// Normalize trims raw and rewrites socks5:// and socks4:// to socks5h:// and
// socks4a://. The second result is false when no proxy is configured.
// Malformed input is returned trimmed but otherwise unchanged.
func Normalize(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}

	scheme, rest, found := strings.Cut(value, "://")
	if !found {
		return value, true
	}
	from := strings.ToLower(scheme)
	to, ok := remoteDNS[from]
	if !ok {
		return value, true
	}

	normalized := to + "://" + rest
	fields := logrus.Fields{"from": from, "to": to}
	if u, err := url.Parse(normalized); err == nil {
		fields["host"] = u.Host
	}
	logging.Log.WithFields(fields).Info("normalized proxy scheme")
	return normalized, true
}

// BuildTransportProxyMap returns the requests-style {"http", "https"} proxy
// mapping for raw, or nil when no proxy is configured.
func BuildTransportProxyMap(raw string) map[string]string {
	normalized, ok := Normalize(raw)
	if !ok {
		return nil
	}
	return map[string]string{"http": normalized, "https": normalized}
}
