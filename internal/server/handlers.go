package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/lewisedginton/agentcore_mcp/internal/projectconfig"
	"github.com/lewisedginton/agentcore_mcp/internal/resolver"
	"github.com/lewisedginton/agentcore_mcp/internal/userconfig"
	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Key   string `json:"key,omitempty"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type listServersResponse struct {
	Servers []serverInfo `json:"servers"`
}

type resolveRequest struct {
	Servers []string `json:"servers"`
}

type resolveResponse struct {
	MCPServers  resolver.ServerConfigSet `json:"mcpServers"`
	Diagnostics []resolver.Diagnostic    `json:"diagnostics,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.GetLoggerFromContext(r.Context(), s.log).Error("Failed to encode response", logger.ErrorField(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	resp := errorResponse{Error: err.Error()}
	var missing *projectconfig.MissingKeyError
	if errors.As(err, &missing) {
		resp.Key = missing.Key
	}
	s.writeJSON(w, r, code, resp)
}

// readBody maps an oversized body to 413 and anything else to 400.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(r.Body)
	if err == nil {
		return data, true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, r, http.StatusRequestEntityTooLarge, err)
	} else {
		s.writeError(w, r, http.StatusBadRequest, err)
	}
	return nil, false
}

func (s *Server) handleListServers(w http.ResponseWriter, r *http.Request) {
	names := resolver.KnownServers()
	resp := listServersResponse{Servers: make([]serverInfo, 0, len(names))}
	for _, name := range names {
		resp.Servers = append(resp.Servers, serverInfo{
			Name:    name,
			Enabled: s.cfg.Enabled == nil || s.cfg.Enabled(name),
		})
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	log := logger.GetLoggerFromContext(r.Context(), s.log)

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}
	var req resolveRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	doc, diags, err := s.deps.Resolver.Resolve(r.Context(), resolver.NewSession(), req.Servers)
	switch {
	case errors.Is(err, projectconfig.ErrConfigurationMissing):
		s.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		log.Error("Resolve failed", logger.ErrorField(err))
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	servers := doc.MCPServers
	if servers == nil {
		servers = resolver.ServerConfigSet{}
	}
	s.writeJSON(w, r, http.StatusOK, resolveResponse{MCPServers: servers, Diagnostics: diags})
}

func (s *Server) writeDocument(w http.ResponseWriter, r *http.Request, code int, doc userconfig.Document) {
	data, err := userconfig.Encode(doc)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

func (s *Server) handleGetUserConfig(w http.ResponseWriter, r *http.Request) {
	doc, err := s.deps.UserConfig.Load(r.Context())
	if err != nil {
		var parseErr *userconfig.ParseError
		if !errors.As(err, &parseErr) {
			s.writeError(w, r, http.StatusInternalServerError, err)
			return
		}
		// a corrupt stored document reads as empty
		logger.GetLoggerFromContext(r.Context(), s.log).Warn("Serving empty user-defined MCP config", logger.ErrorField(err))
	}
	s.writeDocument(w, r, http.StatusOK, doc)
}

func (s *Server) handlePutUserConfig(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	doc, err := s.deps.UserConfig.SetRaw(r.Context(), data)
	if err != nil {
		var parseErr *userconfig.ParseError
		if errors.As(err, &parseErr) {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeDocument(w, r, http.StatusOK, doc)
}
