package bwf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadNames reports a malformed static-name document in
// [Names.LoadStatic].
var ErrBadNames = errors.New("invalid static names")

// Generator produces formatted text for a symbolic name. The name that
// triggered the call is in spec.Name.
type Generator func(w *FixedWriter, spec Spec)

// BoundNames resolves named specifiers during a render. Implementations are
// read-only once a render starts.
type BoundNames interface {
	// Generate writes output for spec.Name. A missing name emits the
	// {~name~} marker; an empty name is a no-op.
	Generate(w *FixedWriter, spec Spec)
}

// missingName writes the in-band marker for an unresolvable name.
func missingName(w *FixedWriter, name string) {
	w.WriteString("{~").WriteString(name).WriteString("~}")
}

// Names maps symbolic names to context-free generators. Populate it during
// setup and treat it as read-only once renders may be running; mutation
// after publication needs external synchronization.
type Names struct {
	m map[string]Generator
}

// NewNames returns an empty registry.
func NewNames() *Names {
	return &Names{m: make(map[string]Generator)}
}

// Assign stores g under an owned copy of name, replacing any prior entry.
func (n *Names) Assign(name string, g Generator) *Names {
	n.m[strings.Clone(name)] = g
	return n
}

// Bind returns the registry as a resolver for a render call. Global
// registries need no context, so the registry resolves directly.
func (n *Names) Bind() BoundNames { return n }

// Generate implements [BoundNames].
func (n *Names) Generate(w *FixedWriter, spec Spec) {
	if spec.Name == "" {
		return
	}
	if g, ok := n.m[spec.Name]; ok {
		g(w, spec)
		return
	}
	missingName(w, spec.Name)
}

// lookup is used by Compile to pre-resolve names.
func (n *Names) lookup(name string) (Generator, bool) {
	g, ok := n.m[name]
	return g, ok
}

// LoadStatic reads a YAML mapping of name to literal text and assigns a
// generator per entry that renders the text (string precision applies).
// Entries replace existing assignments of the same name.
func (n *Names) LoadStatic(r io.Reader) error {
	var entries map[string]string
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return fmt.Errorf("%w: %v", ErrBadNames, err)
	}
	for name, text := range entries {
		n.Assign(name, func(w *FixedWriter, spec Spec) {
			formatString(w, spec, text)
		})
	}
	return nil
}

// Global is the process-wide registry used by [FixedWriter.Print] and
// [Compile]. Populate it at initialization; later mutation requires external
// synchronization against in-flight renders.
var Global = NewNames()

// ContextGenerator produces formatted text for a symbolic name using a
// caller-supplied context, e.g. a request being logged.
type ContextGenerator[T any] func(w *FixedWriter, spec Spec, ctx T)

// ContextNames maps symbolic names to generators that need a run-time
// context of type T. The registry itself is context-free; [ContextNames.Bind]
// pairs it with a context for one render.
type ContextNames[T any] struct {
	m map[string]ContextGenerator[T]
}

// NewContextNames returns an empty context-bound registry.
func NewContextNames[T any]() *ContextNames[T] {
	return &ContextNames[T]{m: make(map[string]ContextGenerator[T])}
}

// Assign stores g under an owned copy of name, replacing any prior entry.
func (n *ContextNames[T]) Assign(name string, g ContextGenerator[T]) *ContextNames[T] {
	n.m[strings.Clone(name)] = g
	return n
}

// AssignBound stores a context-free generator in a context registry, for
// names that do not need the context.
func (n *ContextNames[T]) AssignBound(name string, g Generator) *ContextNames[T] {
	return n.Assign(name, func(w *FixedWriter, spec Spec, _ T) { g(w, spec) })
}

// Bind returns a lightweight resolver closing over the shared name map and
// ctx, for use in a single render call.
func (n *ContextNames[T]) Bind(ctx T) BoundNames {
	return contextBinding[T]{m: n.m, ctx: ctx}
}

type contextBinding[T any] struct {
	m   map[string]ContextGenerator[T]
	ctx T
}

func (b contextBinding[T]) Generate(w *FixedWriter, spec Spec) {
	if spec.Name == "" {
		return
	}
	if g, ok := b.m[spec.Name]; ok {
		g(w, spec, b.ctx)
		return
	}
	missingName(w, spec.Name)
}
