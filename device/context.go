package device

// Context owns one Stream per logical device slot plus the worker budget
// kernels draw on when fanning out block goroutines.
//
// A Context is cheap enough to build per run, but callers typically share
// one across an application. Close releases the dispatcher goroutines;
// using a Stream after Close returns ErrClosed.
type Context struct {
	streams []*Stream
	workers int
}

// New creates a Context with the given options applied over
// DefaultOptions(). Complexity: O(slots).
func New(opts ...Option) *Context {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		streams: make([]*Stream, o.Slots),
		workers: o.Workers,
	}
	for i := range c.streams {
		c.streams[i] = newStream()
	}

	return c
}

// Stream returns the command stream for the given slot, or (nil,
// ErrSlotRange) when the slot does not exist.
func (c *Context) Stream(slot int) (*Stream, error) {
	if slot < 0 || slot >= len(c.streams) {
		return nil, ErrSlotRange
	}

	return c.streams[slot], nil
}

// Slots reports the number of logical device slots.
func (c *Context) Slots() int { return len(c.streams) }

// Workers reports the per-kernel goroutine budget.
func (c *Context) Workers() int { return c.workers }

// Sync barriers every stream: when it returns, all previously submitted
// work on every slot has completed.
func (c *Context) Sync() error {
	for _, s := range c.streams {
		if err := s.Sync(); err != nil {
			return err
		}
	}

	return nil
}

// Close seals every stream and waits for their dispatchers to drain.
// Safe to call more than once.
func (c *Context) Close() {
	for _, s := range c.streams {
		s.close()
	}
}
