package catalog

import "net/http"

// headerTransport stamps the catalog headers onto every outgoing request.
type headerTransport struct {
	transport http.RoundTripper
	userAgent string
}

func newHeaderTransport(base http.RoundTripper, userAgent string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &headerTransport{transport: base, userAgent: userAgent}
}

// RoundTrip clones the request before setting headers.
func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.transport.RoundTrip(req)
}
