package completion

import (
	"errors"
	"sort"
	"strings"

	"github.com/cloudsh/cloudsh/internal/serrors"
)

// Context carries the parsed state of the current line for providers
// that tailor their values to what the user already typed.
type Context struct {
	// Command is the space-joined command path, e.g. "vm create"
	Command string
	// Args maps flags already on the line to their values
	Args map[string]string
}

// ValuesFunc produces values with no knowledge of the current line.
type ValuesFunc func() ([]string, error)

// PrefixFunc produces values for the partial value under the cursor.
type PrefixFunc func(prefix string) ([]string, error)

// ContextFunc produces values from the prefix and the parsed line.
type ContextFunc func(prefix string, ctx *Context) ([]string, error)

// Provider is a dynamic value source. A provider implements any subset
// of the three calling conventions; Resolve probes them in a fixed
// order. A convention signals "not supported here" by returning
// serrors.ErrUnsupported, which falls through to the next one.
type Provider struct {
	Context ContextFunc
	Prefix  PrefixFunc
	Values  ValuesFunc
}

// Resolve tries the richest convention first: context-aware, then
// prefix-aware, then zero-argument. Any error other than
// ErrUnsupported stops the probe and is returned to the caller.
func (p Provider) Resolve(prefix string, ctx *Context) ([]string, error) {
	if p.Context != nil {
		values, err := p.Context(prefix, ctx)
		if !errors.Is(err, serrors.ErrUnsupported) {
			return values, err
		}
	}
	if p.Prefix != nil {
		values, err := p.Prefix(prefix)
		if !errors.Is(err, serrors.ErrUnsupported) {
			return values, err
		}
	}
	if p.Values != nil {
		values, err := p.Values()
		if !errors.Is(err, serrors.ErrUnsupported) {
			return values, err
		}
	}
	return nil, serrors.ErrUnsupported
}

// Registry holds named providers referenced from the command table.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

// Register adds or replaces a provider under name
func (r *Registry) Register(name string, p Provider) {
	r.providers[name] = p
}

// Lookup returns the provider registered under name
func (r *Registry) Lookup(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names returns the registered provider names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildContext scans the line for flag/value pairs so context-aware
// providers can see what the user already picked.
func buildContext(command, text string) *Context {
	args := map[string]string{}
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if !strings.HasPrefix(tok, "-") {
			continue
		}
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") {
			args[tok] = tokens[i+1]
		}
	}
	return &Context{Command: command, Args: args}
}
