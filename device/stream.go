package device

import "sync"

// Stream executes submitted tasks one at a time, in submission order.
// It mirrors an accelerator command stream: two tasks on the same Stream
// never overlap, so a task may freely read state its predecessor wrote.
type Stream struct {
	mu     sync.Mutex
	tasks  chan func()
	done   chan struct{}
	closed bool
}

// streamDepth is the submission backlog a Stream tolerates before
// Submit blocks the caller.
const streamDepth = 64

// newStream starts the dispatcher goroutine for one stream.
func newStream() *Stream {
	s := &Stream{
		tasks: make(chan func(), streamDepth),
		done:  make(chan struct{}),
	}
	go s.dispatch()

	return s
}

// dispatch drains the task queue until the stream is closed.
func (s *Stream) dispatch() {
	defer close(s.done)
	for task := range s.tasks {
		task()
	}
}

// Submit enqueues task for in-order execution. It blocks only when the
// stream backlog is full, and returns ErrClosed after Close.
func (s *Stream) Submit(task func()) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return ErrClosed
	}
	// Holding mu across the send keeps Submit/Close linearizable:
	// a task accepted here is guaranteed to run before the queue closes.
	s.tasks <- task
	s.mu.Unlock()

	return nil
}

// Sync blocks until every task submitted before the call has completed.
// This is the bulk-synchronous barrier between algorithm iterations.
func (s *Stream) Sync() error {
	barrier := make(chan struct{})
	if err := s.Submit(func() { close(barrier) }); err != nil {
		return err
	}
	<-barrier

	return nil
}

// close seals the queue and waits for the dispatcher to drain it.
func (s *Stream) close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.tasks)
	}
	s.mu.Unlock()
	<-s.done
}
