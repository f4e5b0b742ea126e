package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func newBufferLogger(buf *bytes.Buffer, level Level) Logger {
	return NewLogger(Config{
		Level:   level,
		Format:  "json",
		Service: "test-service",
		Output:  buf,
	})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("failed to parse log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerWritesServiceAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, InfoLevel)

	log.WithFields(ServerField("basic")).Info("resolved", IntField("count", 1))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry["service"] != "test-service" {
		t.Errorf("service = %v, want test-service", entry["service"])
	}
	if entry["server"] != "basic" {
		t.Errorf("server = %v, want basic", entry["server"])
	}
	if entry["count"] != "1" {
		t.Errorf("count = %v, want \"1\"", entry["count"])
	}
	if entry["msg"] != "resolved" {
		t.Errorf("msg = %v, want resolved", entry["msg"])
	}
}

func TestWithFieldsIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, InfoLevel)

	child := log.WithFields(StringField("child", "yes"))
	if log == child {
		t.Fatal("WithFields should return a new logger instance")
	}

	log.Info("parent")
	entries := decodeLines(t, &buf)
	if _, ok := entries[0]["child"]; ok {
		t.Error("parent logger should not carry child fields")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, WarnLevel)

	log.Debug("debug")
	log.Info("info")
	log.Warn("warn")
	log.Error("error")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries at warn level, got %d", len(entries))
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMaskedField(t *testing.T) {
	if got := MaskedField("token", "").Value; got != "" {
		t.Errorf("empty secret masked as %q", got)
	}
	if got := MaskedField("token", "short").Value; got != "****" {
		t.Errorf("short secret masked as %q", got)
	}
	if got := MaskedField("token", "eyJhbGciOiJSUzI1NiJ9.payload").Value; got != "eyJhbGci..." {
		t.Errorf("long secret masked as %q", got)
	}
}

func TestDomainFields(t *testing.T) {
	if f := ServerField("agentcore gateway"); f.Key != "server" || f.Value != "agentcore gateway" {
		t.Errorf("ServerField = %+v", f)
	}
	if f := SecretNameField("demo/credentials"); f.Key != "secret_name" || f.Value != "demo/credentials" {
		t.Errorf("SecretNameField = %+v", f)
	}
	if got := ErrorField(errors.New("boom")).Value; got != "boom" {
		t.Errorf("ErrorField = %q", got)
	}
	if got := ErrorField(nil).Value; got != "<nil>" {
		t.Errorf("ErrorField(nil) = %q", got)
	}
}

func TestHTTPMiddlewareSetsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, InfoLevel)

	var seen string
	handler := log.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/servers", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected generated UUID correlation id, got %q", seen)
	}
	if rec.Header().Get(CorrelationIDHeader) != seen {
		t.Errorf("response header = %q, want %q", rec.Header().Get(CorrelationIDHeader), seen)
	}

	entries := decodeLines(t, &buf)
	last := entries[len(entries)-1]
	if last["http_status"] != "418" {
		t.Errorf("http_status = %v, want 418", last["http_status"])
	}
}

func TestHTTPMiddlewareKeepsValidCorrelationID(t *testing.T) {
	log := NewNopLogger()
	id := uuid.New().String()

	var seen string
	handler := log.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCorrelationIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, id)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != id {
		t.Errorf("correlation id = %q, want %q", seen, id)
	}
}
