package device_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horde/device"
)

// TestTarget_IsSingleKnownGeneration verifies exactly one generation flag
// is compiled in and that it matches itself.
func TestTarget_IsSingleKnownGeneration(t *testing.T) {
	tgt := device.Target()

	// Exactly one bit set.
	assert.NotZero(t, tgt)
	assert.Zero(t, uint32(tgt)&(uint32(tgt)-1), "target must be a single flag")

	// And it is one of the declared generations.
	assert.True(t, tgt.Matches(device.Any))
}

// TestArch_Matches exercises mask intersection in both directions.
func TestArch_Matches(t *testing.T) {
	assert.True(t, (device.AMD64 | device.ARM64).Matches(device.ARM64))
	assert.True(t, device.Any.Matches(device.Scalar))
	assert.False(t, device.AMD64.Matches(device.ARM64))
	assert.False(t, device.Arch(0).Matches(device.Any))
}

// TestContext_SlotsAndOptions covers construction defaults and overrides.
func TestContext_SlotsAndOptions(t *testing.T) {
	ctx := device.New()
	defer ctx.Close()
	assert.Equal(t, 1, ctx.Slots())
	assert.GreaterOrEqual(t, ctx.Workers(), 1)

	multi := device.New(device.WithSlots(3), device.WithWorkers(2))
	defer multi.Close()
	assert.Equal(t, 3, multi.Slots())
	assert.Equal(t, 2, multi.Workers())

	// Invalid option values fall back to defaults.
	odd := device.New(device.WithSlots(0), device.WithWorkers(-5))
	defer odd.Close()
	assert.Equal(t, 1, odd.Slots())
	assert.GreaterOrEqual(t, odd.Workers(), 1)
}

// TestContext_StreamRange verifies slot bounds checking.
func TestContext_StreamRange(t *testing.T) {
	ctx := device.New(device.WithSlots(2))
	defer ctx.Close()

	s, err := ctx.Stream(1)
	require.NoError(t, err)
	require.NotNil(t, s)

	_, err = ctx.Stream(2)
	assert.ErrorIs(t, err, device.ErrSlotRange)
	_, err = ctx.Stream(-1)
	assert.ErrorIs(t, err, device.ErrSlotRange)
}

// TestStream_SubmissionOrder proves two tasks on one stream never reorder
// or overlap: each task observes every predecessor's write.
func TestStream_SubmissionOrder(t *testing.T) {
	ctx := device.New()
	defer ctx.Close()
	s, err := ctx.Stream(0)
	require.NoError(t, err)

	const tasks = 200
	var order []int
	for i := 0; i < tasks; i++ {
		i := i
		require.NoError(t, s.Submit(func() { order = append(order, i) }))
	}
	require.NoError(t, s.Sync())

	require.Len(t, order, tasks)
	for i, got := range order {
		assert.Equal(t, i, got)
	}
}

// TestStream_SyncIsBarrier verifies Sync only returns after all prior
// submissions completed.
func TestStream_SyncIsBarrier(t *testing.T) {
	ctx := device.New()
	defer ctx.Close()
	s, err := ctx.Stream(0)
	require.NoError(t, err)

	var done atomic.Int64
	for i := 0; i < 50; i++ {
		require.NoError(t, s.Submit(func() { done.Add(1) }))
	}
	require.NoError(t, s.Sync())
	assert.EqualValues(t, 50, done.Load())
}

// TestContext_CloseRejectsWork verifies post-Close submissions fail with
// ErrClosed and that Close is idempotent.
func TestContext_CloseRejectsWork(t *testing.T) {
	ctx := device.New()
	s, err := ctx.Stream(0)
	require.NoError(t, err)

	ctx.Close()
	ctx.Close() // second Close must be harmless

	assert.ErrorIs(t, s.Submit(func() {}), device.ErrClosed)
	assert.ErrorIs(t, s.Sync(), device.ErrClosed)
}
