package resolver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransport(t *testing.T) {
	tr, err := ParseTransport(json.RawMessage(`{"command": "uvx", "args": ["awslabs.aws-documentation-mcp-server"], "env": {"FASTMCP_LOG_LEVEL": "ERROR"}}`))
	require.NoError(t, err)
	assert.Equal(t, ProcessTransport{
		Command: "uvx",
		Args:    []string{"awslabs.aws-documentation-mcp-server"},
		Env:     map[string]string{"FASTMCP_LOG_LEVEL": "ERROR"},
	}, tr)

	tr, err = ParseTransport(json.RawMessage(`{"type": "streamable_http", "url": "https://example.com/mcp", "headers": {"X-Key": "v"}}`))
	require.NoError(t, err)
	assert.Equal(t, HTTPTransport{URL: "https://example.com/mcp", Headers: map[string]string{"X-Key": "v"}}, tr)

	raw := json.RawMessage(`{"type": "sse", "url": "https://example.com/sse"}`)
	tr, err = ParseTransport(raw)
	require.NoError(t, err)
	assert.Equal(t, RawTransport(raw), tr)

	_, err = ParseTransport(json.RawMessage(`[1, 2]`))
	assert.Error(t, err)
}

func TestDocumentJSON(t *testing.T) {
	doc := Document{MCPServers: ServerConfigSet{
		"search":  ProcessTransport{Command: "python", Args: []string{"mcp_server_basic.py"}},
		"use_aws": HTTPTransport{URL: "http://127.0.0.1:8000/mcp"},
		"custom":  RawTransport(`{"type":"sse","url":"https://example.com/sse"}`),
	}}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mcpServers": {
		"search": {"command": "python", "args": ["mcp_server_basic.py"]},
		"use_aws": {"type": "streamable_http", "url": "http://127.0.0.1:8000/mcp"},
		"custom": {"type": "sse", "url": "https://example.com/sse"}
	}}`, string(data))

	var back Document
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, doc.MCPServers["search"], back.MCPServers["search"])
	assert.Equal(t, doc.MCPServers["use_aws"], back.MCPServers["use_aws"])

	data, err = json.Marshal(Document{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mcpServers": {}}`, string(data))
}
