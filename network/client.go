// Package network provides the pre-configured HTTP client used to reach the vidtogallery backend.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/vidtogallery/vidtogallery/key"
)

// Client is the HTTP client shared across the application.
// Configure replaces it once the configuration is loaded.
var Client = New(time.Minute, false)

// New builds an HTTP client with the given overall timeout.
// When fingerprint is set, TLS connections mimic a Chrome handshake.
func New(timeout time.Duration, fingerprint bool) *http.Client {
	var transport http.RoundTripper = newTransport()
	if fingerprint {
		transport = newFingerprintTransport(timeout)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// Configure rebuilds Client from the api.* configuration keys.
func Configure() {
	timeout := time.Duration(viper.GetInt(key.APITimeout)) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}
	Client = New(timeout, viper.GetBool(key.APITLSFingerprint))
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
