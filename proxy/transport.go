package proxy

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/http2"
	xproxy "golang.org/x/net/proxy"

	"github.com/kingfs/go-llm-admission/logging"
)

// ErrUnsupportedScheme is returned by NewTransport for proxy schemes the
// transport cannot dial through.
var ErrUnsupportedScheme = errors.New("unsupported proxy scheme")

// Config holds the transport settings used for upstream provider traffic.
var Config = struct {
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ExpectContinueTimeout time.Duration
	ResponseHeaderTimeout time.Duration
	DialTimeout           time.Duration
	KeepAlive             time.Duration
	H2ReadIdleTimeout     time.Duration
	H2PingTimeout         time.Duration
}{
	MaxIdleConns:          1000,
	MaxIdleConnsPerHost:   100,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
	ResponseHeaderTimeout: 600 * time.Second, // image generation can take minutes
	DialTimeout:           3 * time.Second,
	KeepAlive:             30 * time.Second,
	H2ReadIdleTimeout:     30 * time.Second,
	H2PingTimeout:         15 * time.Second,
}

func newDialer() *net.Dialer {
	return &net.Dialer{
		Timeout:   Config.DialTimeout,
		KeepAlive: Config.KeepAlive,
	}
}

func baseTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:          Config.MaxIdleConns,
		MaxIdleConnsPerHost:   Config.MaxIdleConnsPerHost,
		IdleConnTimeout:       Config.IdleConnTimeout,
		TLSHandshakeTimeout:   Config.TLSHandshakeTimeout,
		ExpectContinueTimeout: Config.ExpectContinueTimeout,
		ResponseHeaderTimeout: Config.ResponseHeaderTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext: newDialer().DialContext,
	}
}

func configureHTTP2(t *http.Transport) {
	h2, err := http2.ConfigureTransports(t)
	if err != nil {
		logging.Log.WithError(err).Debug("http2 not configured for upstream transport")
		return
	}
	h2.ReadIdleTimeout = Config.H2ReadIdleTimeout
	h2.PingTimeout = Config.H2PingTimeout
}

// NewTransport builds an HTTP transport that reaches upstream through the
// normalized form of raw. A blank raw yields a direct transport.
func NewTransport(raw string) (*http.Transport, error) {
	t := baseTransport()
	normalized, ok := Normalize(raw)
	if !ok {
		configureHTTP2(t)
		return t, nil
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		t.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		d, err := xproxy.FromURL(u, newDialer())
		if err != nil {
			return nil, fmt.Errorf("socks dialer for %s: %w", u.Host, err)
		}
		if cd, ok := d.(xproxy.ContextDialer); ok {
			t.DialContext = cd.DialContext
		} else {
			t.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return d.Dial(network, addr)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	configureHTTP2(t)
	return t, nil
}

// TransportCache reuses transports per proxy URL so that pooled connections
// survive across requests. Spellings that normalize to the same URL share a
// transport, and each spelling is normalized once.
type TransportCache struct {
	mu    sync.RWMutex
	byRaw map[string]*http.Transport
	byURL map[string]*http.Transport
}

// NewTransportCache returns an empty cache.
func NewTransportCache() *TransportCache {
	return &TransportCache{
		byRaw: make(map[string]*http.Transport),
		byURL: make(map[string]*http.Transport),
	}
}

// Get returns the cached transport for raw, building it on first use.
func (c *TransportCache) Get(raw string) (*http.Transport, error) {
	key := strings.TrimSpace(raw)

	c.mu.RLock()
	if t, ok := c.byRaw[key]; ok {
		c.mu.RUnlock()
		return t, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.byRaw[key]; ok {
		return t, nil
	}
	normalized, _ := Normalize(key)
	t, ok := c.byURL[normalized]
	if !ok {
		var err error
		if t, err = NewTransport(normalized); err != nil {
			return nil, err
		}
		c.byURL[normalized] = t
	}
	c.byRaw[key] = t
	return t, nil
}

// Clear closes idle connections and drops every cached transport.
func (c *TransportCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.byURL {
		t.CloseIdleConnections()
	}
	c.byRaw = make(map[string]*http.Transport)
	c.byURL = make(map[string]*http.Transport)
}
