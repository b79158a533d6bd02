package postprocessors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
)

// ErrUnknownProcessor is returned when a pipeline names a processor that
// has no builder.
var ErrUnknownProcessor = errors.New("unknown processor")

// BuilderFunc builds a processor from its [processor] settings table.
// A nil cfg means every setting takes its default.
type BuilderFunc func(cfg map[string]any) (driven.PostProcessor, error)

// Registry holds the processors a pipeline can be assembled from, keyed by
// the names used in settings. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: map[string]BuilderFunc{}}
}

// Register installs builder under name, replacing any earlier one.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = builder
}

// Build runs the builder registered under name.
func (r *Registry) Build(name string, cfg map[string]any) (driven.PostProcessor, error) {
	r.mu.RLock()
	builder, ok := r.builders[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProcessor, name)
	}
	return builder(cfg)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builders[name]
	return ok
}

// Names lists the registered names alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.builders))
}
