package projectconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/lewisedginton/agentcore_mcp/pkg/logger"
)

// Store guards read-modify-write of config.json within one process.
type Store struct {
	path string
	mu   sync.Mutex
	log  logger.Logger
}

// NewStore returns a store for the config.json at path.
func NewStore(path string, log logger.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads config.json. A missing file yields an empty project with the
// region and project name defaults applied.
func (s *Store) Load() (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*Project, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("Project config not found, using defaults", logger.StringField("path", s.path))
		p := &Project{}
		p.applyDefaults()
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project config %s: %w", s.path, err)
	}

	p := &Project{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse project config %s: %w", s.path, err)
		}
	}
	p.applyDefaults()
	return p, nil
}

// Update loads the project, applies fn and saves the result. Nothing is
// written when fn returns an error.
func (s *Store) Update(fn func(*Project) error) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// save writes through a temp file so a crash never leaves half a document.
func (s *Store) save(p *Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project config: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write project config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write project config: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace project config %s: %w", s.path, err)
	}
	s.log.Debug("Project config saved", logger.StringField("path", s.path))
	return nil
}

// SetGatewayID records a discovered gateway.
func (s *Store) SetGatewayID(_ context.Context, gatewayID string) error {
	_, err := s.Update(func(p *Project) error {
		p.GatewayID = gatewayID
		return nil
	})
	return err
}

// RecordCognitoIDs records discovered user pool and client IDs. Empty values
// leave the stored ones alone.
func (s *Store) RecordCognitoIDs(_ context.Context, userPoolID, clientID string) error {
	_, err := s.Update(func(p *Project) error {
		c := p.cognito()
		if userPoolID != "" {
			c.UserPoolID = userPoolID
			c.DiscoveryURL = DiscoveryURL(p.Region, userPoolID)
		}
		if clientID != "" {
			c.ClientID = clientID
		}
		return nil
	})
	return err
}
