package presets

import (
	"slices"
	"sync"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/lintconfig"
)

var _ lintconfig.PresetSource = (*Registry)(nil)

// Registry gestiona los presets disponibles para "extends"
type Registry struct {
	mu      sync.RWMutex
	presets map[string]*lintconfig.Config
	aliases map[string]string
}

// NewRegistry crea un registro vacío
func NewRegistry() *Registry {
	return &Registry{
		presets: make(map[string]*lintconfig.Config),
		aliases: make(map[string]string),
	}
}

// NewDefaultRegistry crea un registro con los presets incluidos en el binario
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(lintconfig.ConventionalPreset, Conventional(), "conventional", "config-conventional")
	return r
}

// Register registra un preset con sus alias
func (r *Registry) Register(name string, cfg *lintconfig.Config, aliases ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.presets[name]; exists {
		return apperrors.ErrPresetExists.WithContext("preset", name)
	}
	for _, alias := range aliases {
		if _, exists := r.aliases[alias]; exists {
			return apperrors.ErrPresetExists.WithContext("preset", alias)
		}
	}

	r.presets[name] = cfg.Clone()
	for _, alias := range aliases {
		r.aliases[alias] = name
	}
	return nil
}

// Lookup devuelve una copia del preset, buscando también por alias
func (r *Registry) Lookup(name string) (*lintconfig.Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	cfg, ok := r.presets[name]
	if !ok {
		return nil, false
	}
	return cfg.Clone(), true
}

// List retorna los nombres registrados ordenados
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Aliases retorna los alias de un preset
func (r *Registry) Aliases(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for alias, canonical := range r.aliases {
		if canonical == name {
			out = append(out, alias)
		}
	}
	slices.Sort(out)
	return out
}
