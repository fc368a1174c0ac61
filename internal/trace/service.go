package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/wardenlabs/warden/internal/domain"
)

// queueDepth bounds how many pending appends may sit behind the writer
// before Append blocks.
const queueDepth = 64

// maxLineBytes caps a single audit record when scanning the log back.
const maxLineBytes = 4 * 1024 * 1024

// Service is the append-only, intent-correlated audit trail. All writes are
// serialized through a single writer goroutine so concurrent appends never
// interleave partial records; a failing append is logged and swallowed so
// the queue keeps draining.
type Service struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	queue  chan domain.TraceEntry
	done   chan struct{}
}

// NewService creates a trace service writing to path and starts its writer.
// A nil logger discards queue failures.
func NewService(path string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		path:   path,
		logger: logger,
		queue:  make(chan domain.TraceEntry, queueDepth),
		done:   make(chan struct{}),
	}
	go s.drain()
	return s
}

// Append enqueues one complete trace entry for the writer goroutine.
// Returns an error only when the service is already closed; write failures
// inside the queue are logged and never surfaced.
func (s *Service) Append(entry domain.TraceEntry) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("trace service is closed")
	}
	s.mu.Unlock()

	s.queue <- entry
	return nil
}

// Close stops accepting appends and blocks until the queue has drained.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.queue)
	<-s.done
}

// ByIntent scans the full log, filters by intent id, skips malformed
// records, and returns at most the latest limit matches in chronological
// order. A missing log file yields an empty result.
func (s *Service) ByIntent(intentID string, limit int) ([]domain.TraceEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	var entries []domain.TraceEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry domain.TraceEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Malformed records are tolerated and skipped.
			continue
		}
		if entry.IntentID == intentID {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning audit log: %w", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// drain is the single writer. It preserves append order as received and
// continues past individual failures.
func (s *Service) drain() {
	defer close(s.done)
	for entry := range s.queue {
		if err := s.writeEntry(entry); err != nil {
			s.logger.Error("audit append failed",
				"entry_id", entry.ID,
				"intent_id", entry.IntentID,
				"error", err.Error(),
			)
		}
	}
}

// writeEntry appends one complete record as a single line.
func (s *Service) writeEntry(entry domain.TraceEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding trace entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating orchestration directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("appending trace entry: %w", err)
	}
	return nil
}
