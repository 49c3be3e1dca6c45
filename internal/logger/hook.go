package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook buffers log entries in a channel and writes them to its writers
// from a separate goroutine, so logging never blocks request handling.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters creates an async hook writing to all given writers.
// bufferSize is the entry queue length (defaults to 1000 when <= 0).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels reports that this hook handles all log levels.
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire queues the entry without blocking. When the queue is full the entry is
// dropped rather than stalling the caller.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// After Close, write synchronously as a fallback.
		data, err := h.format(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Queue full; drop the entry.
	}
	return nil
}

func (h *AsyncHook) format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		data, err := h.format(entry)
		if err != nil {
			continue
		}
		for _, writer := range h.writers {
			if _, err := writer.Write(data); err != nil {
				// Cannot log here without looping; skip to the next writer.
				continue
			}
		}
	}
}

// Close drains the queue and stops the worker goroutine.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
