package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"github.com/vidtogallery/vidtogallery/log"
	"golang.org/x/net/http2"
)

// fingerprintTransport sends HTTPS requests over uTLS connections carrying Chrome's Client Hello.
// It tries HTTP/2 first and falls back to HTTP/1.1 when the server refuses h2.
// Plain HTTP requests go through the regular transport.
type fingerprintTransport struct {
	plain *http.Transport
	h1    *http.Transport
	h2    *http2.Transport
}

func newFingerprintTransport(timeout time.Duration) *fingerprintTransport {
	dialTimeout := min(timeout, 30*time.Second)

	return &fingerprintTransport{
		plain: newTransport(),
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialTLS(ctx, network, addr, dialTimeout, []string{"http/1.1"})
			},
			ResponseHeaderTimeout: 30 * time.Second,
		},
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, dialTimeout, nil)
			},
		},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	if req.Body != nil && req.GetBody == nil {
		return nil, err
	}

	log.Debugf("h2 request to %s failed, retrying over http/1.1: %v", req.URL.Host, err)

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, fmt.Errorf("rewind request body: %w", bodyErr)
		}
		retry.Body = body
	}

	return t.h1.RoundTrip(retry)
}

// dialTLS opens a TLS connection mimicking Chrome 120's fingerprint.
// A nil protos keeps Chrome's own ALPN list (h2, http/1.1).
func dialTLS(ctx context.Context, network, addr string, timeout time.Duration, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
