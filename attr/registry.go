package attr

import (
	"fmt"
	"sort"
)

// Registry maps type tags to factories. A Header reader uses it to pick a
// decoder for each attribute; tags it does not know are skipped.
//
// A Registry is not safe for concurrent registration. Once populated it
// may be shared by any number of concurrent readers.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// StandardRegistry returns a new registry holding every built-in kind.
// Each call builds a fresh registry, so callers may extend it freely.
func StandardRegistry() *Registry {
	r := NewRegistry()
	for _, f := range standardFactories {
		r.MustRegister(f)
	}
	return r
}

var standardFactories = []Factory{
	func() Value { return new(Box2i) },
	func() Value { return new(Box2f) },
	func() Value { return new(Bytes) },
	func() Value { return new(ChannelList) },
	func() Value { return new(Chromaticities) },
	func() Value { return new(Compression) },
	func() Value { return new(DeepImageState) },
	func() Value { return new(Double) },
	func() Value { return new(EnvMap) },
	func() Value { return new(Float) },
	func() Value { return new(FloatVector) },
	func() Value { return new(IDManifest) },
	func() Value { return new(Int) },
	func() Value { return new(KeyCode) },
	func() Value { return new(LineOrder) },
	func() Value { return new(M33d) },
	func() Value { return new(M33f) },
	func() Value { return new(M44d) },
	func() Value { return new(M44f) },
	func() Value { return new(Preview) },
	func() Value { return new(Rational) },
	func() Value { return new(String) },
	func() Value { return new(StringVector) },
	func() Value { return new(TileDescription) },
	func() Value { return new(TimeCode) },
	func() Value { return new(V2d) },
	func() Value { return new(V2f) },
	func() Value { return new(V2i) },
	func() Value { return new(V3d) },
	func() Value { return new(V3f) },
	func() Value { return new(V3i) },
}

// Register adds a kind under the tag reported by f().TypeName().
// It fails if the tag is empty or already registered.
func (r *Registry) Register(f Factory) error {
	v := f()
	if v == nil {
		return fmt.Errorf("%w: factory returned nil", ErrInvalidAttribute)
	}
	tag := v.TypeName()
	if tag == "" {
		return fmt.Errorf("%w: empty type name", ErrInvalidAttribute)
	}
	if _, ok := r.factories[tag]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, tag)
	}
	r.factories[tag] = f
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(f Factory) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Has reports whether tag is registered.
func (r *Registry) Has(tag string) bool {
	_, ok := r.factories[tag]
	return ok
}

// New returns a zero value of the kind registered under tag.
func (r *Registry) New(tag string) (Value, bool) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, false
	}
	return f(), true
}

// TypeNames returns the registered tags in sorted order.
func (r *Registry) TypeNames() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
