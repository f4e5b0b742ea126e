package probe

import "net/http"

// headerRoundTripper sets fixed headers on every outgoing request.
type headerRoundTripper struct {
	transport http.RoundTripper
	headers   map[string]string
}

func newHeaderRoundTripper(headers map[string]string, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &headerRoundTripper{transport: base, headers: headers}
}

func (rt *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clonedReq := req.Clone(req.Context())
	for k, v := range rt.headers {
		// the SDK negotiates its own Content-Type and Accept
		if http.CanonicalHeaderKey(k) == "Content-Type" && clonedReq.Header.Get("Content-Type") != "" {
			continue
		}
		clonedReq.Header.Set(k, v)
	}
	return rt.transport.RoundTrip(clonedReq)
}
