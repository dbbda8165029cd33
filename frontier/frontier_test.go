package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/frontier"
)

// TestFrontier_NewAndLen covers construction and size bookkeeping.
func TestFrontier_NewAndLen(t *testing.T) {
	f := frontier.New[int32](10)
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, 10, f.Cap())
	assert.Empty(t, f.Slice())
	assert.Len(t, f.Raw(), 10)

	require.NoError(t, f.SetLen(7))
	assert.Equal(t, 7, f.Len())
	assert.Len(t, f.Slice(), 7)

	f.Clear()
	assert.Equal(t, 0, f.Len())

	// Negative capacity degrades to an empty frontier.
	assert.Equal(t, 0, frontier.New[int32](-3).Cap())
}

// TestFrontier_SetLenBounds rejects sizes outside [0, capacity].
func TestFrontier_SetLenBounds(t *testing.T) {
	f := frontier.New[int32](4)
	assert.ErrorIs(t, f.SetLen(5), frontier.ErrCapacity)
	assert.ErrorIs(t, f.SetLen(-1), frontier.ErrNegativeLen)
}

// TestFrontier_Sequence seeds a consecutive id range in parallel.
func TestFrontier_Sequence(t *testing.T) {
	ctx := device.New()
	defer ctx.Close()
	s, err := ctx.Stream(0)
	require.NoError(t, err)

	f := frontier.New[int32](100)
	require.NoError(t, f.Sequence(ctx, s, 0, 100))
	require.NoError(t, s.Sync())

	require.Equal(t, 100, f.Len())
	for i, v := range f.Slice() {
		assert.EqualValues(t, i, v)
	}

	// Oversized seeding is refused.
	assert.ErrorIs(t, f.Sequence(ctx, s, 0, 101), frontier.ErrCapacity)
	assert.ErrorIs(t, f.Sequence(ctx, s, 0, -1), frontier.ErrNegativeLen)
}

// TestPair_Swap flips the in/out roles without touching contents.
func TestPair_Swap(t *testing.T) {
	p := frontier.NewPair[int32](8)
	in, out := p.In, p.Out

	p.Swap()
	assert.Same(t, in, p.Out)
	assert.Same(t, out, p.In)
}
