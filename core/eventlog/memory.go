package eventlog

import (
	"context"
	"sync"
)

// MemorySink keeps the latest events in a fixed-size ring.
type MemorySink struct {
	mu     sync.RWMutex
	ring   []Event
	next   int
	filled bool
}

func NewMemorySink(capacity int) *MemorySink {
	if capacity < 1 {
		capacity = 1
	}
	return &MemorySink{ring: make([]Event, capacity)}
}

func (m *MemorySink) Append(_ context.Context, events []Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range events {
		m.ring[m.next] = e
		m.next = (m.next + 1) % len(m.ring)
		if m.next == 0 {
			m.filled = true
		}
	}
	return nil
}

// Len returns the number of retained events.
func (m *MemorySink) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.len()
}

func (m *MemorySink) len() int {
	if m.filled {
		return len(m.ring)
	}
	return m.next
}

// Recent returns up to n retained events matching tag (any tag if empty), newest first.
func (m *MemorySink) Recent(n int, tag string) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n = max(n, 0)
	out := make([]Event, 0, min(n, m.len()))
	for i := 1; i <= m.len() && len(out) < n; i++ {
		e := m.ring[(m.next-i+len(m.ring))%len(m.ring)]
		if tag != "" && e.Tag != tag {
			continue
		}
		out = append(out, e)
	}
	return out
}
