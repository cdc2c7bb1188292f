package remote

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

// DialProber checks connectivity by opening a TCP connection to a fixed address
type DialProber struct {
	addr    string
	timeout time.Duration
}

// NewDialProber creates a prober dialing the given host:port address
func NewDialProber(addr string, timeout time.Duration) *DialProber {
	return &DialProber{addr: addr, timeout: timeout}
}

// Online reports whether the probe address accepts a TCP connection
func (p *DialProber) Online(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// ProbeAddr derives a host:port probe address from a source URL,
// using the scheme's default port when the URL doesn't carry one
func ProbeAddr(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("no host in URL %q", rawURL)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}
	return net.JoinHostPort(host, port), nil
}
