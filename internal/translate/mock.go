package translate

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider is an in-memory provider for tests.
type MockProvider struct {
	mu           sync.Mutex
	Translations map[string]string // source text -> translation
	FailFor      map[string]bool   // source texts that should error
	Err          error             // when set, every call fails with it
	CallCount    int
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Latte":    "لاتيه",
			"Espresso": "إسبريسو",
		},
		FailFor: make(map[string]bool),
	}
}

func (m *MockProvider) Translate(ctx context.Context, text, target string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	if m.Err != nil {
		return "", m.Err
	}
	if m.FailFor[text] {
		return "", fmt.Errorf("mock failure for %q", text)
	}
	if tr, ok := m.Translations[text]; ok {
		return tr, nil
	}
	// bracketed text for anything without a canned answer
	return fmt.Sprintf("[%s->%s]", text, target), nil
}

// Calls returns the number of Translate invocations so far.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// Reset clears the call count.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
}

var _ Provider = (*MockProvider)(nil)
