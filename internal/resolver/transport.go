package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TransportStreamableHTTP is the "type" written for HTTP servers.
const TransportStreamableHTTP = "streamable_http"

// ServerTransportConfig is one entry of an mcpServers document. The
// implementations are ProcessTransport, HTTPTransport and RawTransport.
type ServerTransportConfig interface {
	transport()
}

// ProcessTransport launches the server as a child process speaking stdio.
type ProcessTransport struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// HTTPTransport reaches the server over streamable HTTP.
type HTTPTransport struct {
	URL     string
	Headers map[string]string
}

// RawTransport is a user-supplied entry, emitted exactly as given.
type RawTransport json.RawMessage

func (ProcessTransport) transport() {}
func (HTTPTransport) transport()    {}
func (RawTransport) transport()     {}

type httpTransportJSON struct {
	Type    string            `json:"type"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

// MarshalJSON writes {"type": "streamable_http", "url": ..., "headers": ...}.
func (h HTTPTransport) MarshalJSON() ([]byte, error) {
	return json.Marshal(httpTransportJSON{Type: TransportStreamableHTTP, URL: h.URL, Headers: h.Headers})
}

// MarshalJSON returns the raw entry.
func (r RawTransport) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// ParseTransport classifies a raw entry: entries with a command are
// processes, entries with a url are HTTP, anything else stays raw.
func ParseTransport(raw json.RawMessage) (ServerTransportConfig, error) {
	var probe struct {
		Command string            `json:"command"`
		Args    []string          `json:"args"`
		Env     map[string]string `json:"env"`
		Type    string            `json:"type"`
		URL     string            `json:"url"`
		Headers map[string]string `json:"headers"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid server entry: %w", err)
	}
	switch {
	case probe.Command != "":
		return ProcessTransport{Command: probe.Command, Args: probe.Args, Env: probe.Env}, nil
	case probe.URL != "" && (probe.Type == "" || probe.Type == TransportStreamableHTTP):
		return HTTPTransport{URL: probe.URL, Headers: probe.Headers}, nil
	default:
		return RawTransport(bytes.Clone(raw)), nil
	}
}

// ServerConfigSet maps server keys to transports.
type ServerConfigSet map[string]ServerTransportConfig

// Document is the resolver's output, {"mcpServers": {...}}.
type Document struct {
	MCPServers ServerConfigSet `json:"mcpServers"`
}

// MarshalJSON always writes an object for mcpServers, never null.
func (d Document) MarshalJSON() ([]byte, error) {
	servers := d.MCPServers
	if servers == nil {
		servers = ServerConfigSet{}
	}
	return json.Marshal(struct {
		MCPServers ServerConfigSet `json:"mcpServers"`
	}{servers})
}

// UnmarshalJSON classifies each entry with ParseTransport.
func (d *Document) UnmarshalJSON(data []byte) error {
	var doc struct {
		MCPServers map[string]json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	d.MCPServers = make(ServerConfigSet, len(doc.MCPServers))
	for name, raw := range doc.MCPServers {
		t, err := ParseTransport(raw)
		if err != nil {
			return fmt.Errorf("server %q: %w", name, err)
		}
		d.MCPServers[name] = t
	}
	return nil
}
