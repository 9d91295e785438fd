package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menuhub/pkg/utils"
)

func newTestProvider(baseURL string, timeout time.Duration) *MyMemory {
	return NewMyMemory(utils.TranslateConfig{
		BaseURL:    baseURL,
		Timeout:    timeout,
		PrimaryTag: "en",
	})
}

func TestMyMemory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Latte" {
			t.Errorf("q = %q, want %q", got, "Latte")
		}
		if got := r.URL.Query().Get("langpair"); got != "en|ar" {
			t.Errorf("langpair = %q, want %q", got, "en|ar")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"لاتيه"},"responseStatus":200}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 5*time.Second)
	got, err := p.Translate(context.Background(), "Latte", "ar")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "لاتيه" {
		t.Errorf("Translate = %q, want %q", got, "لاتيه")
	}
}

func TestMyMemory_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 5*time.Second)
	if _, err := p.Translate(context.Background(), "Latte", "ar"); err == nil {
		t.Error("Translate should fail on non-2xx status")
	}
}

func TestMyMemory_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 5*time.Second)
	if _, err := p.Translate(context.Background(), "Latte", "ar"); err == nil {
		t.Error("Translate should fail on malformed body")
	}
}

func TestMyMemory_EmptyTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"responseData":{},"responseStatus":200}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 5*time.Second)
	if _, err := p.Translate(context.Background(), "Latte", "ar"); err == nil {
		t.Error("Translate should fail when translatedText is missing")
	}
}

func TestMyMemory_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"late"}}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, 50*time.Millisecond)
	if _, err := p.Translate(context.Background(), "Latte", "ar"); err == nil {
		t.Error("Translate should fail when the call exceeds the timeout")
	}
}

func TestMyMemory_FallbackThroughMemoizer(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	memo := NewMemoizer(newTestProvider(srv.URL, time.Second))

	if got := memo.Translate(context.Background(), "Espresso", "ar"); got != "Espresso" {
		t.Errorf("Translate = %q, want original on provider failure", got)
	}
	if got := memo.Translate(context.Background(), "Espresso", "ar"); got != "Espresso" {
		t.Errorf("second Translate = %q, want original", got)
	}
	if calls != 2 {
		t.Errorf("provider hit %d times, want 2 (failures are never cached)", calls)
	}
}
