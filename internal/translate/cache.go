package translate

import (
	"context"
	"strings"
	"sync"
)

// Result reports how a translation was obtained. Upstream code mostly wants
// the plain text; tests and logging can tell a real translation from a
// fallback without mocking tricks.
type Result struct {
	Text      string
	FromCache bool
	FellBack  bool
	Err       error // provider error when FellBack is true
}

// Memoizer fronts a Provider with a process-wide in-memory cache.
// Entries live for the lifetime of the process and are never evicted;
// the cache starting cold after a restart is an accepted tradeoff.
type Memoizer struct {
	provider Provider

	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoizer(p Provider) *Memoizer {
	return &Memoizer{
		provider: p,
		entries:  make(map[string]string),
	}
}

// Key builds the cache key for a (text, target) pair. Text is trimmed and
// case-folded with strings.ToLower so "Latte", " latte " and "LATTE" share
// one entry per target language.
func Key(text, target string) string {
	return target + ":" + strings.ToLower(strings.TrimSpace(text))
}

// Result translates text into the target language, consulting the cache
// first. Provider failures are absorbed: the caller gets the original text
// back and the failure is never written to the cache, so the next call with
// the same key retries the provider.
func (m *Memoizer) Result(ctx context.Context, text, target string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Text: ""}
	}

	key := Key(text, target)

	m.mu.RLock()
	cached, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return Result{Text: cached, FromCache: true}
	}

	// The provider call happens outside the lock so one slow upstream call
	// never blocks other callers' cache hits or their own provider calls.
	// Two concurrent misses on the same key may both get here; last write
	// wins below.
	translated, err := m.provider.Translate(ctx, text, target)
	if err != nil {
		return Result{Text: text, FellBack: true, Err: err}
	}

	m.mu.Lock()
	m.entries[key] = translated
	m.mu.Unlock()

	return Result{Text: translated}
}

// Translate is the plain-text form of Result. It never fails: on provider
// trouble the input comes back unchanged.
func (m *Memoizer) Translate(ctx context.Context, text, target string) string {
	return m.Result(ctx, text, target).Text
}

// TranslateAll applies Translate to each element independently, preserving
// order. There is no cross-element atomicity; some elements may translate
// while others fall back.
func (m *Memoizer) TranslateAll(ctx context.Context, texts []string, target string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = m.Translate(ctx, t, target)
	}
	return out
}

// Len returns the number of cached entries.
func (m *Memoizer) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
