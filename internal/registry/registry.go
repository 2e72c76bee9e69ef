package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const registryVersion = "1.0"

// ErrNotFound is returned for ids the registry does not hold.
var ErrNotFound = errors.New("source not found")

// Registry persists the catalog sources fetched on this machine.
type Registry struct {
	path    string
	mu      sync.RWMutex
	version string
	sources []Source
}

// DefaultPath returns sources.json under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "widgetkit", "sources.json"), nil
}

// NewRegistry creates a new Registry instance and loads it from disk
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		version: registryVersion,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create registry directory: %w", err)
	}

	if err := r.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		r.sources = []Source{}
	}

	return r, nil
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return r.path
}

// Load reads the registry from disk
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file RegistryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse registry: %w", err)
	}

	r.version = file.Version
	r.sources = file.Sources
	return nil
}

// Save writes the registry to disk atomically
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := RegistryFile{
		Version: r.version,
		Sources: r.sources,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns every source sorted by id.
func (r *Registry) List() []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Source, len(r.sources))
	copy(result, r.sources)
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Get retrieves a source by ID
func (r *Registry) Get(id string) (Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sources {
		if s.ID == id {
			return s, nil
		}
	}
	return Source{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Record stores src, replacing any earlier entry with the same ID. An empty
// ID is derived from the URL.
func (r *Registry) Record(src Source) (Source, error) {
	if src.ID == "" {
		src.ID = SourceID(src.URL)
	}
	if err := ValidateSourceID(src.ID); err != nil {
		return Source{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.sources {
		if existing.ID == src.ID {
			r.sources[i] = src
			return src, nil
		}
	}
	r.sources = append(r.sources, src)
	return src, nil
}

// Remove removes a source from the registry
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sources {
		if s.ID == id {
			r.sources = append(r.sources[:i], r.sources[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
