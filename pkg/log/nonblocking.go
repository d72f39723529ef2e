package log

import (
	"io"
	"sync"
	"sync/atomic"
)

const defaultQueueSize = 256

// NonBlockingWriter hands writes to a background goroutine through a bounded
// queue. Write never waits for the underlying writer: when the queue is full
// the line is dropped and counted. Errors from the underlying writer are
// ignored.
type NonBlockingWriter struct {
	out     io.Writer
	queue   chan []byte
	done    chan struct{}
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
}

// NewNonBlockingWriter starts the drain goroutine for out
func NewNonBlockingWriter(out io.Writer, queueSize int) *NonBlockingWriter {
	w := &NonBlockingWriter{
		out:   out,
		queue: make(chan []byte, queueSize),
		done:  make(chan struct{}),
	}
	go w.drain()
	return w
}

// Write queues a copy of p. It always reports success.
func (w *NonBlockingWriter) Write(p []byte) (int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		w.dropped.Add(1)
		return len(p), nil
	}

	line := make([]byte, len(p))
	copy(line, p)
	select {
	case w.queue <- line:
	default:
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped returns the number of writes discarded so far
func (w *NonBlockingWriter) Dropped() uint64 {
	return w.dropped.Load()
}

// Close stops accepting writes and waits until queued lines are flushed
func (w *NonBlockingWriter) Close() error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	<-w.done
	return nil
}

func (w *NonBlockingWriter) drain() {
	defer close(w.done)
	for line := range w.queue {
		_, _ = w.out.Write(line)
	}
}
