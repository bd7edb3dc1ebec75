package generator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

func addRequest() Request {
	return Request{
		Code:   "def add(a, b):\n    return a + b",
		Kind:   types.KindFunction,
		Name:   "add",
		Style:  types.StyleGoogle,
		Params: []string{"a", "b"},
	}
}

func TestGenerate_FallbackModeUsesTemplate(t *testing.T) {
	g := New()

	block, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Brief description of add.",
		"",
		"Args:",
		"    a (Any): Description of a.",
		"    b (Any): Description of b.",
		"",
		"Returns:",
		"    Any: Description of return value.",
	}, block.Lines)
}

func TestGenerate_EmptyNameRejected(t *testing.T) {
	g := New()
	req := addRequest()
	req.Name = ""

	_, err := g.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestGenerate_CapabilitySuccess(t *testing.T) {
	capability := CapabilityFunc(func(ctx context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "Google-style")
		assert.Contains(t, prompt, "def add(a, b):")
		return "Add two numbers.\n\nArgs:\n    a (int): First.\n    b (int): Second.", nil
	})
	g := New(WithCapability(capability))

	block, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)
	assert.Equal(t, "Add two numbers.", block.Lines[0])
	assert.Len(t, block.Lines, 5)
}

func TestGenerate_CapabilityFailureFallsBack(t *testing.T) {
	capability := CapabilityFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("api unavailable")
	})
	g := New(WithCapability(capability))

	block, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)
	assert.Equal(t, "Brief description of add.", block.Lines[0])
}

func TestGenerate_EmptyCapabilityOutputFallsBack(t *testing.T) {
	capability := CapabilityFunc(func(ctx context.Context, prompt string) (string, error) {
		return "```python\n```", nil
	})
	g := New(WithCapability(capability))

	block, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)
	assert.Equal(t, "Brief description of add.", block.Lines[0])
}

func TestGenerate_CancelledContextSurfaces(t *testing.T) {
	capability := CapabilityFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", ctx.Err()
	})
	g := New(WithCapability(capability))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, addRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_CachesByContent(t *testing.T) {
	var calls int32
	capability := CapabilityFunc(func(ctx context.Context, prompt string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "Cached answer.", nil
	})
	g := New(WithCapability(capability))

	first, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, first.Lines, second.Lines)

	// Style participates in the key.
	numpy := addRequest()
	numpy.Style = types.StyleNumPy
	_, err = g.Generate(context.Background(), numpy)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGenerate_ReturnedBlockIsIndependent(t *testing.T) {
	g := New()

	first, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)
	first.Lines[0] = "mutated"

	second, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)
	assert.Equal(t, "Brief description of add.", second.Lines[0])
}

type mapStore struct {
	blocks map[string]*types.DocBlock
	gets   int
	puts   int
}

func newMapStore() *mapStore {
	return &mapStore{blocks: make(map[string]*types.DocBlock)}
}

func (m *mapStore) Get(ctx context.Context, key string) (*types.DocBlock, bool, error) {
	m.gets++
	block, ok := m.blocks[key]
	if !ok {
		return nil, false, nil
	}
	return block.Clone(), true, nil
}

func (m *mapStore) Put(ctx context.Context, key string, style types.DocStyle, block *types.DocBlock) error {
	m.puts++
	m.blocks[key] = block.Clone()
	return nil
}

func TestGenerate_PersistentStoreRoundTrip(t *testing.T) {
	st := newMapStore()

	g := New(WithStore(st))
	_, err := g.Generate(context.Background(), addRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, st.puts)

	// A fresh generator with a cold memory cache hits the store.
	g2 := New(WithStore(st))
	block, err := g2.Generate(context.Background(), addRequest())
	require.NoError(t, err)
	assert.Equal(t, "Brief description of add.", block.Lines[0])
	assert.Equal(t, 1, st.puts)
}

func TestProvider_Names(t *testing.T) {
	assert.Equal(t, ProviderTemplate, New().Provider())
	assert.Equal(t, "func", New(WithCapability(CapabilityFunc(nil))).Provider())
}

func TestBlockFromText_StripsFencesAndQuotes(t *testing.T) {
	text := "```python\n\"\"\"Summary line.\n\nDetail.\n\"\"\"\n```"
	block := blockFromText(text)
	assert.Equal(t, []string{"Summary line.", "", "Detail."}, block.Lines)
}

func TestBlockFromText_Empty(t *testing.T) {
	assert.Error(t, blockFromText("   \n").Validate())
}
