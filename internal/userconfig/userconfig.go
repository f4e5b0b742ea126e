// Package userconfig loads and saves the user-defined MCP server document,
// user_defined_mcp.json, shaped like {"mcpServers": {...}}.
package userconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/lewisedginton/agentcore_mcp/internal/storage_manager"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

// DefaultFileName is the document's conventional name.
const DefaultFileName = "user_defined_mcp.json"

// Document is an arbitrary JSON object. Numbers decode as json.Number so a
// load/save cycle does not reformat them.
type Document map[string]any

// ParseError reports a document that is not a JSON object.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid user-defined MCP config %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes data as a JSON object.
func Parse(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Source: "input", Err: err}
	}
	if doc == nil {
		return nil, &ParseError{Source: "input", Err: errors.New("document must be a JSON object")}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Source: "input", Err: errors.New("unexpected data after the JSON object")}
	}
	return doc, nil
}

// Encode renders doc with four-space indentation, leaving non-ASCII text and
// HTML characters unescaped.
func Encode(doc Document) ([]byte, error) {
	if doc == nil {
		doc = Document{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode user-defined MCP config: %w", err)
	}
	return buf.Bytes(), nil
}

// Servers returns the raw entries under "mcpServers", in key order. A missing
// "mcpServers" yields no entries.
func (d Document) Servers() ([]string, map[string]json.RawMessage, error) {
	raw, ok := d["mcpServers"]
	if !ok {
		return nil, nil, nil
	}
	servers, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &ParseError{Source: "mcpServers", Err: fmt.Errorf("expected an object, got %T", raw)}
	}

	names := make([]string, 0, len(servers))
	out := make(map[string]json.RawMessage, len(servers))
	for name, entry := range servers {
		data, err := json.Marshal(entry)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode server %q: %w", name, err)
		}
		names = append(names, name)
		out[name] = data
	}
	sort.Strings(names)
	return names, out, nil
}

// Store keeps the document in a storage_manager backend.
type Store struct {
	files storage_manager.FileProvider
	name  string
	log   logger.Logger
}

// NewStore returns a store for name within files.
func NewStore(files storage_manager.FileProvider, name string, log logger.Logger) *Store {
	if name == "" {
		name = DefaultFileName
	}
	return &Store{files: files, name: name, log: log}
}

// Location describes where the document lives.
func (s *Store) Location() string {
	return s.files.Describe(s.name)
}

// Load returns the stored document. A missing document is empty. A document
// that fails to parse is returned empty alongside a *ParseError.
func (s *Store) Load(ctx context.Context) (Document, error) {
	data, err := s.files.Read(ctx, s.name)
	if errors.Is(err, storage_manager.ErrNotFound) {
		return Document{}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to read user-defined MCP config: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Source = s.Location()
		}
		s.log.Warn("User-defined MCP config is not valid JSON", logger.ErrorField(err))
		return Document{}, err
	}
	return doc, nil
}

// Save replaces the stored document.
func (s *Store) Save(ctx context.Context, doc Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := s.files.Write(ctx, s.name, data); err != nil {
		return fmt.Errorf("failed to write user-defined MCP config: %w", err)
	}
	s.log.Info("User-defined MCP config saved", logger.StringField("location", s.Location()))
	return nil
}

// SetRaw parses user input and saves it. Input that does not parse is
// replaced with an empty document, which is saved, and the *ParseError is
// returned so the caller can show it.
func (s *Store) SetRaw(ctx context.Context, data []byte) (Document, error) {
	doc, parseErr := Parse(data)
	if parseErr != nil {
		doc = Document{}
	}
	if err := s.Save(ctx, doc); err != nil {
		return doc, err
	}
	return doc, parseErr
}
