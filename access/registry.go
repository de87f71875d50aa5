package access

import (
	"fmt"
	"slices"

	"github.com/kbukum/pushflow/errors"
	"github.com/kbukum/pushflow/logger"
	"github.com/kbukum/pushflow/pipeline"
	"github.com/kbukum/pushflow/rw"
	"github.com/kbukum/pushflow/validation"
)

const resourceTransform = "transform"

// Registry holds named dual-mode transforms. Build it once at startup and
// share it read-only afterwards; it is not safe for concurrent registration.
type Registry struct {
	log     *logger.Logger
	entries map[string]any
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger registrations are reported to.
func WithLogger(l *logger.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{entries: make(map[string]any)}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.Get("access")
	}
	return r
}

// Register stores t under name. Names must be unique identifiers such as
// "team.name"; a nil t is rejected.
func Register[P, F any](r *Registry, name string, t rw.Transform[P, F]) error {
	if err := validation.Identifier("name", name); err != nil {
		return err
	}
	if t == nil {
		return errors.InvalidInput("transform", "must not be nil").WithDetail("name", name)
	}
	if _, ok := r.entries[name]; ok {
		return errors.AlreadyExists(resourceTransform, name)
	}
	r.entries[name] = t
	r.log.Debug("transform registered", logger.Fields(
		logger.FieldTransform, name,
		"type", signature[P, F](),
	))
	return nil
}

// MustRegister is Register that panics on error. Use it for static tables.
func MustRegister[P, F any](r *Registry, name string, t rw.Transform[P, F]) {
	if err := Register(r, name, t); err != nil {
		panic(err)
	}
}

// Lookup returns the transform stored under name. It fails with NOT_FOUND
// when the name is unknown and TYPE_MISMATCH when it was registered for
// different record types.
func Lookup[P, F any](r *Registry, name string) (rw.Transform[P, F], error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, errors.NotFound(resourceTransform, name)
	}
	t, ok := entry.(pipeline.Transform[rw.Pair[P], rw.Pair[F]])
	if !ok {
		return nil, errors.TypeMismatch(name, signature[P, F](), fmt.Sprintf("%T", entry))
	}
	return t, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered transforms.
func (r *Registry) Len() int {
	return len(r.entries)
}

func signature[P, F any]() string {
	var t pipeline.Transform[rw.Pair[P], rw.Pair[F]]
	return fmt.Sprintf("%T", t)
}
