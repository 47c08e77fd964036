package events

import (
	"log/slog"
	"sync"
)

// PublishedEvent records one Publish call for assertions.
type PublishedEvent struct {
	Topic   string
	Payload interface{}
}

// MockEventPublisher captures published events in memory for tests.
type MockEventPublisher struct {
	mu        sync.Mutex
	published []PublishedEvent
	failWith  error
	logger    *slog.Logger
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

// FailWith makes every subsequent Publish return err.
func (m *MockEventPublisher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func (m *MockEventPublisher) Publish(topic string, payload interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.published = append(m.published, PublishedEvent{Topic: topic, Payload: payload})
	return nil
}

func (m *MockEventPublisher) Close() error {
	return nil
}

// Published returns a copy of the captured events.
func (m *MockEventPublisher) Published() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.published))
	copy(out, m.published)
	return out
}
