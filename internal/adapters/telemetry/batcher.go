// Package telemetry implements span collection and the bridge that turns
// spans into renderer events.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultSizeLimit is the buffer size (4KB) used when none is specified.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the flush interval (50ms) used when none is specified.
	DefaultTimeLimit = 50 * time.Millisecond
)

// BatchProcessor buffers writes until a size limit or time limit is reached,
// then hands the accumulated bytes to a callback. It is safe for concurrent
// use.
type BatchProcessor struct {
	sizeLimit int
	timeLimit time.Duration
	emit      func([]byte)

	mu     sync.Mutex
	buf    *bytes.Buffer
	ticker *time.Ticker
	done   chan struct{}
	closed bool
}

// NewBatchProcessor returns a running BatchProcessor. Non-positive limits
// fall back to the defaults. Call Close to stop the background flusher.
func NewBatchProcessor(sizeLimit int, timeLimit time.Duration, emit func([]byte)) *BatchProcessor {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	bp := &BatchProcessor{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		emit:      emit,
		buf:       new(bytes.Buffer),
		ticker:    time.NewTicker(timeLimit),
		done:      make(chan struct{}),
	}
	go bp.flushLoop()

	return bp
}

// Write appends p to the buffer and flushes synchronously once the buffer
// reaches the size limit.
func (bp *BatchProcessor) Write(p []byte) (n int, err error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return 0, errors.New("batch processor is closed")
	}

	n, err = bp.buf.Write(p)
	if err != nil {
		return n, err
	}

	if bp.buf.Len() >= bp.sizeLimit {
		bp.flushLocked()
		// A full buffer was just emitted; push the next timed flush out.
		bp.ticker.Reset(bp.timeLimit)
	}

	return n, nil
}

// Flush emits any buffered data immediately.
func (bp *BatchProcessor) Flush() {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if bp.closed {
		return
	}
	bp.flushLocked()
}

// Close stops the background flusher and emits whatever is still buffered.
// It is safe to call more than once.
func (bp *BatchProcessor) Close() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return nil
	}

	bp.closed = true
	close(bp.done)
	bp.flushLocked()
	return nil
}

func (bp *BatchProcessor) flushLoop() {
	for {
		select {
		case <-bp.ticker.C:
			bp.Flush()
		case <-bp.done:
			bp.ticker.Stop()
			return
		}
	}
}

// flushLocked must be called with mu held. The callback receives a copy so
// the buffer can be reused right away; it runs under the lock, which keeps
// emissions ordered, so it must stay cheap.
func (bp *BatchProcessor) flushLocked() {
	if bp.buf.Len() == 0 {
		return
	}

	data := make([]byte, bp.buf.Len())
	copy(data, bp.buf.Bytes())
	bp.buf.Reset()

	if bp.emit != nil {
		bp.emit(data)
	}
}
