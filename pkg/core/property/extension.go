package property

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/robertoranon/gltf-transform/pkg/core/graph"
)

// ErrDuplicateExtension is returned by [RegisterExtension] when the
// identifier is already registered. Extension identifiers form a statically
// enumerable registry; each maps to exactly one token.
var ErrDuplicateExtension = errors.New("extension identifier already registered")

// Token is the type-safe handle for an extension identifier. Tokens are
// minted by [RegisterExtension] and passed to GetExtension/SetExtension,
// preserving "unique attachment per identifier" without runtime type
// inspection. The zero Token matches nothing.
type Token struct {
	id string
}

// ID returns the registered extension identifier (e.g. "VENDOR_example").
func (t Token) ID() string { return t.id }

var (
	registryMu sync.Mutex
	registry   []string
)

// RegisterExtension mints the token for an extension identifier.
// Returns ErrDuplicateExtension if the identifier was already registered.
func RegisterExtension(id string) (Token, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if id == "" {
		return Token{}, fmt.Errorf("extension identifier cannot be empty: %w", graph.ErrInvalidOperation)
	}
	if slices.Contains(registry, id) {
		return Token{}, fmt.Errorf("%q: %w", id, ErrDuplicateExtension)
	}
	registry = append(registry, id)
	return Token{id: id}, nil
}

// MustRegisterExtension is like RegisterExtension but panics on error.
// Intended for package-level token variables.
func MustRegisterExtension(id string) Token {
	tok, err := RegisterExtension(id)
	if err != nil {
		panic(err)
	}
	return tok
}

// LookupExtension returns the token for a registered identifier.
func LookupExtension(id string) (Token, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if slices.Contains(registry, id) {
		return Token{id: id}, true
	}
	return Token{}, false
}

// RegisteredExtensions returns all registered identifiers in registration
// order.
func RegisteredExtensions() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	return slices.Clone(registry)
}

// ExtensionProperty is a property variant distinguished by an extension
// identifier, used as the lookup key when attaching to a host. Extension
// sub-nodes are reachable only through their host, not through Root.
type ExtensionProperty interface {
	Property

	// ExtensionID returns the identifier this extension attaches under.
	ExtensionID() string
}

// extensible adds extension attachment to a property kind. Every kind embeds
// it except Root, which does not participate in extension attachment; that
// restriction is structural, not a runtime check.
type extensible struct {
	base
}

// GetExtension returns the attached extension for the token's identifier,
// or nil when none is attached.
func (e *extensible) GetExtension(tok Token) ExtensionProperty {
	for _, l := range e.Graph().ChildLinks(&e.base) {
		if l.Kind() != string(TypeExtension) {
			continue
		}
		if ext, ok := l.Child().(ExtensionProperty); ok && ext.ExtensionID() == tok.ID() {
			return ext
		}
	}
	return nil
}

// SetExtension attaches ext under the token's identifier, replacing any
// extension previously attached for it. The replaced extension is unlinked
// from this host, not disposed. Passing nil removes the attachment; removal
// with nothing attached is a no-op.
//
// At most one extension link exists per distinct identifier per host.
func (e *extensible) SetExtension(tok Token, ext ExtensionProperty) error {
	if e.Disposed() {
		return graph.ErrInvalidState
	}
	if ext != nil {
		if ext.ExtensionID() != tok.ID() {
			return fmt.Errorf("extension %q does not match token %q: %w",
				ext.ExtensionID(), tok.ID(), graph.ErrInvalidOperation)
		}
		if err := e.checkRef(ext); err != nil {
			return err
		}
	}

	g := e.Graph()
	for _, l := range g.ChildLinks(&e.base) {
		if l.Kind() != string(TypeExtension) {
			continue
		}
		if prev, ok := l.Child().(ExtensionProperty); ok && prev.ExtensionID() == tok.ID() {
			g.Unlink(l)
			break
		}
	}
	if ext == nil {
		return nil
	}
	_, err := g.Link(tok.ID(), string(TypeExtension), &e.base, ext)
	return err
}

// ListExtensions returns all attached extensions in attachment order.
func (e *extensible) ListExtensions() []ExtensionProperty {
	var out []ExtensionProperty
	for _, l := range e.Graph().ChildLinks(&e.base) {
		if l.Kind() != string(TypeExtension) {
			continue
		}
		if ext, ok := l.Child().(ExtensionProperty); ok {
			out = append(out, ext)
		}
	}
	return out
}

// Extension is the concrete extension node kind: a property carrying the
// identifier it attaches under. Vendor-specific sub-resources use it
// directly or embed it.
type Extension struct {
	extensible
	id string
}

// NewExtension creates an extension node for the token's identifier and
// registers it with g.
func NewExtension(g *graph.Graph, tok Token, name string) *Extension {
	e := &Extension{id: tok.ID()}
	e.name = name
	g.Register(e)
	return e
}

// PropertyType returns TypeExtension.
func (e *Extension) PropertyType() Type { return TypeExtension }

// ExtensionID returns the identifier this extension attaches under.
func (e *Extension) ExtensionID() string { return e.id }
