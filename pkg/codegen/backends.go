package codegen

import (
	"fmt"
	"sort"
	"sync"

	"github.com/platinummonkey/syspropc/pkg/schema"
)

// FileKind says which output directory a generated file belongs in.
type FileKind int

const (
	// KindDeclaration is the interface surface (e.g. a C++ header).
	KindDeclaration FileKind = iota
	// KindDefinition is the implementation surface (e.g. a C++ source file).
	KindDefinition
)

// GeneratedFile is one emitted text artifact. Content is byte-exact for a
// given input; golden-file tests depend on that.
type GeneratedFile struct {
	Name    string
	Kind    FileKind
	Content string
}

// Backend emits the accessor code for one target language. Generate is
// called with a schema that already passed validation and default
// resolution, so every property carries its final storage key.
type Backend interface {
	ID() string
	// Generate returns the artifacts for props. includePath is the path the
	// definition surface uses to reference the declaration surface; backends
	// with a single artifact ignore it.
	Generate(props *schema.Properties, includePath string) ([]GeneratedFile, error)
}

var (
	backendRegistry = make(map[string]Backend)
	registryMu      sync.RWMutex
)

// RegisterBackend adds a backend to the registry. Called from init only;
// the backend set is closed at build time.
func RegisterBackend(b Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backendRegistry[b.ID()] = b
}

// GetBackend returns the backend registered under id.
func GetBackend(id string) (Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	b, ok := backendRegistry[id]
	if !ok {
		return nil, fmt.Errorf("backend not found: %s", id)
	}
	return b, nil
}

// BackendIDs returns the registered backend IDs, sorted.
func BackendIDs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]string, 0, len(backendRegistry))
	for id := range backendRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
