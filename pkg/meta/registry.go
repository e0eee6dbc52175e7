package meta

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds TypeInfo tables indexed by type name and canonical URL.
type Registry struct {
	mu     sync.RWMutex
	byType map[string]*TypeInfo
	byURL  map[string]*TypeInfo
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[string]*TypeInfo),
		byURL:  make(map[string]*TypeInfo),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the registry the model packages register into.
func Default() *Registry { return defaultRegistry }

// Register adds info. Registering a name twice is an error.
func (r *Registry) Register(info *TypeInfo) error {
	if info == nil || info.Name == "" {
		return fmt.Errorf("meta: type info has no name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byType[info.Name]; dup {
		return fmt.Errorf("meta: type %s already registered", info.Name)
	}
	r.byType[info.Name] = info
	if url := info.URL(); url != "" {
		r.byURL[url] = info
	}
	return nil
}

// MustRegister registers info in the default registry and panics on error.
// Model packages call it from init.
func MustRegister(info *TypeInfo) *TypeInfo {
	if err := defaultRegistry.Register(info); err != nil {
		panic(err)
	}
	return info
}

// Lookup returns the TypeInfo of a type name from the default registry.
func Lookup(name string) (*TypeInfo, bool) {
	return defaultRegistry.GetByType(name)
}

// GetByType returns the TypeInfo for a type name (e.g., "Citation",
// "Coding", "Citation.citedArtifact").
func (r *Registry) GetByType(name string) (*TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.byType[name]
	return info, ok
}

// GetByURL returns the TypeInfo for a canonical StructureDefinition URL.
func (r *Registry) GetByURL(url string) (*TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.byURL[url]
	return info, ok
}

// GetElement returns the ElementInfo at a path such as "Citation.status"
// or "Citation.citedArtifact.title.text".
func (r *Registry) GetElement(path string) (*ElementInfo, bool) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return nil, false
	}
	info, ok := r.GetByType(path[:i])
	if !ok {
		return nil, false
	}
	return info.Element(path[i+1:])
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byType)
}

// AllTypes returns all registered type names, sorted.
func (r *Registry) AllTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// TypesOfKind returns the sorted names of the registered types of kind.
func (r *Registry) TypesOfKind(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var types []string
	for name, info := range r.byType {
		if info.Kind == kind {
			types = append(types, name)
		}
	}
	sort.Strings(types)
	return types
}

// Backbones returns the backbone elements owned by root, in path order.
func (r *Registry) Backbones(root string) []*TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*TypeInfo
	for name, info := range r.byType {
		if info.Kind == KindBackbone && strings.HasPrefix(name, root+".") {
			out = append(out, info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsResourceType checks if the given type name is a registered resource.
func (r *Registry) IsResourceType(name string) bool {
	info, ok := r.GetByType(name)
	return ok && info.Kind == KindResource
}

// IsPrimitiveType checks if the given type name is a registered primitive.
func (r *Registry) IsPrimitiveType(name string) bool {
	info, ok := r.GetByType(name)
	return ok && info.Kind == KindPrimitive
}

// IsDataType checks if the given type name is a registered complex datatype.
func (r *Registry) IsDataType(name string) bool {
	info, ok := r.GetByType(name)
	return ok && info.Kind == KindComplex
}
