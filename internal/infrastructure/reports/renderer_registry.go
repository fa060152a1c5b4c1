package reports

import (
	"sort"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// RendererFactory is a constructor function that creates a Renderer.
type RendererFactory func() Renderer

// RendererRegistry manages the output formats selectable with --format.
type RendererRegistry struct {
	renderers map[string]RendererFactory
}

// NewRendererRegistry creates an empty renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]RendererFactory),
	}
}

// NewDefaultRendererRegistry creates a registry holding the human and JSON formats.
func NewDefaultRendererRegistry() *RendererRegistry {
	reg := NewRendererRegistry()
	reg.Register(FormatHuman, NewTextRenderer)
	reg.Register(FormatJSON, NewJSONRenderer)
	return reg
}

// Register adds a renderer factory under the given format name (e.g. "json").
func (r *RendererRegistry) Register(format string, factory RendererFactory) {
	r.renderers[format] = factory
}

// Get returns the renderer for the given format, or a UsageError listing the known formats.
func (r *RendererRegistry) Get(format string) (Renderer, error) {
	factory, ok := r.renderers[format]
	if !ok {
		return nil, &entities.UsageError{
			Message: "unknown output format " + quote(format),
			Valid:   r.Names(),
		}
	}
	return factory(), nil
}

// Names returns the registered format names, sorted.
func (r *RendererRegistry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func quote(s string) string {
	return `"` + s + `"`
}
