package mocks

import (
	"context"
	"sync"

	"github.com/pep299/genai-finance-assistant/internal/repository"
)

// MockGeminiRepo returns Result for every call and records the queries it saw.
type MockGeminiRepo struct {
	Result repository.Generation

	mu      sync.Mutex
	queries []string
	// lastDeadline is set when the call context carried a deadline.
	lastDeadline bool
}

func (m *MockGeminiRepo) Generate(ctx context.Context, query string) repository.Generation {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	_, m.lastDeadline = ctx.Deadline()
	return m.Result
}

// Calls returns how many times Generate was invoked.
func (m *MockGeminiRepo) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

// Queries returns the queries passed to Generate, in order.
func (m *MockGeminiRepo) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}

// HadDeadline reports whether the last call's context had a deadline.
func (m *MockGeminiRepo) HadDeadline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastDeadline
}
