package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// Common errors
var (
	ErrEmptyName    = errors.New("declaration name cannot be empty")
	ErrNoAPIKey     = errors.New("no API key configured")
	ErrBadProvider  = errors.New("unknown provider")
	ErrEmptyContent = errors.New("provider returned no content")
)

// Capability is the injected external text-generation collaborator. The
// engine never constructs remote clients itself; it only calls Complete
// and treats every failure identically.
type Capability interface {
	// Complete returns the raw generated text for prompt.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name identifies the capability for status reporting.
	Name() string
}

// CapabilityFunc adapts a plain function to Capability
type CapabilityFunc func(ctx context.Context, prompt string) (string, error)

func (f CapabilityFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func (f CapabilityFunc) Name() string { return "func" }

// Store is an optional persistent cache consulted between the in-memory
// cache and the capability.
type Store interface {
	Get(ctx context.Context, key string) (*types.DocBlock, bool, error)
	Put(ctx context.Context, key string, style types.DocStyle, block *types.DocBlock) error
}

// Request asks for one documentation block. Params and Members are
// optional: when absent they are re-derived from Code.
type Request struct {
	Code    string
	Kind    types.DeclKind
	Name    string
	Style   types.DocStyle
	Params  []string
	Members []string
}

// Generator produces documentation blocks, delegating to a capability when
// one is configured and falling back to the deterministic template
// otherwise or on any capability failure.
type Generator struct {
	capability Capability
	cache      *Cache
	store      Store
}

// Option configures a Generator
type Option func(*Generator)

// WithCapability sets the delegated text-generation capability
func WithCapability(c Capability) Option {
	return func(g *Generator) { g.capability = c }
}

// WithCache sets the in-memory LRU cache size
func WithCache(size int) Option {
	return func(g *Generator) { g.cache = NewCache(size) }
}

// WithStore attaches a persistent docstring cache
func WithStore(s Store) Option {
	return func(g *Generator) { g.store = s }
}

// New creates a Generator. Without options it runs in pure fallback mode
// with a default-sized cache.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.cache == nil {
		g.cache = NewCache(0)
	}
	return g
}

// Provider reports the active capability name, or "template" when running
// in pure fallback mode.
func (g *Generator) Provider() string {
	if g.capability == nil {
		return ProviderTemplate
	}
	return g.capability.Name()
}

// Generate returns a documentation block for the request. The only error
// it surfaces is context cancellation; delegated failures degrade to the
// template so generation never aborts the pipeline.
func (g *Generator) Generate(ctx context.Context, req Request) (*types.DocBlock, error) {
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	style := req.Style.Normalize()
	key := CacheKey(req.Code, req.Kind, req.Name, style)

	if block, ok := g.cache.Get(key); ok {
		return block, nil
	}
	if g.store != nil {
		if block, ok, err := g.store.Get(ctx, key); err == nil && ok {
			g.cache.Set(key, block)
			return block.Clone(), nil
		}
	}

	block, err := g.generate(ctx, req, style)
	if err != nil {
		return nil, err
	}

	g.cache.Set(key, block)
	if g.store != nil {
		// Best effort; a cache write failure never fails generation.
		_ = g.store.Put(ctx, key, style, block)
	}
	return block.Clone(), nil
}

func (g *Generator) generate(ctx context.Context, req Request, style types.DocStyle) (*types.DocBlock, error) {
	if g.capability == nil {
		return Template(req, style), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := g.capability.Complete(ctx, buildPrompt(req, style))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// GenerationFailure: recovered locally, never surfaced.
		return Template(req, style), nil
	}

	block := blockFromText(text)
	if block.Validate() != nil {
		return Template(req, style), nil
	}
	return block, nil
}

// buildPrompt renders the instruction sent to a delegated capability
func buildPrompt(req Request, style types.DocStyle) string {
	kind := string(req.Kind)
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert Python developer. Generate a comprehensive %s-style docstring for the following %s.\n\n", styleTitle(style), kind)
	b.WriteString("IMPORTANT RULES:\n")
	b.WriteString("1. Be concise but informative\n")
	b.WriteString("2. Include Args, Returns, Raises sections when applicable\n")
	b.WriteString("3. For classes, describe the purpose and key attributes\n")
	b.WriteString("4. Do NOT include the code in the docstring\n")
	b.WriteString("5. Do NOT include triple quotes in your response\n\n")
	fmt.Fprintf(&b, "%s NAME: %s\n", strings.ToUpper(kind), req.Name)
	fmt.Fprintf(&b, "%s CODE:\n```python\n%s\n```\n\n", strings.ToUpper(kind), req.Code)
	b.WriteString("Generate ONLY the docstring content (without triple quotes), ready to insert directly after the definition line.")
	return b.String()
}

func styleTitle(s types.DocStyle) string {
	switch s {
	case types.StyleNumPy:
		return "NumPy"
	default:
		return "Google"
	}
}

// blockFromText normalizes raw capability output into a block: code fences
// and stray triple quotes are stripped, trailing blank lines dropped.
func blockFromText(text string) *types.DocBlock {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```python")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, `"""`)
	text = strings.TrimSuffix(text, `"""`)
	text = strings.Trim(text, "\n")

	if text == "" {
		return &types.DocBlock{}
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return &types.DocBlock{Lines: lines}
}
