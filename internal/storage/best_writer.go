package storage

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrWriterClosed is returned by writes after Close.
var ErrWriterClosed = errors.New("storage: best writer closed")

// BestScoreStore is the synchronous sink behind a BestWriter.
type BestScoreStore interface {
	WriteBestScore(score int) error
}

// BestWriter writes best scores in the background so the tick loop never
// waits on disk. At most one value is pending; a newer value replaces it.
type BestWriter struct {
	store  BestScoreStore
	logger *log.Logger

	mu     sync.Mutex
	closed bool
	ch     chan int
	done   chan struct{}
}

// NewBestWriter starts the background writer. A nil logger discards output.
func NewBestWriter(store BestScoreStore, logger *log.Logger) *BestWriter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &BestWriter{
		store:  store,
		logger: logger,
		ch:     make(chan int, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

// WriteBestScore queues score and returns immediately.
func (w *BestWriter) WriteBestScore(score int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWriterClosed
	}
	for {
		select {
		case w.ch <- score:
			return nil
		default:
		}
		// Drop the stale pending value
		select {
		case <-w.ch:
		default:
		}
	}
}

func (w *BestWriter) run() {
	defer close(w.done)
	for score := range w.ch {
		if err := w.store.WriteBestScore(score); err != nil {
			w.logger.Warn("best score write failed", "score", score, "error", err)
			continue
		}
		w.logger.Debug("best score written", "score", score)
	}
}

// Close flushes the pending value and stops the writer.
func (w *BestWriter) Close() error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.ch)
	}
	w.mu.Unlock()

	<-w.done
	return nil
}
