package translate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newHandlerRouter() (*gin.Engine, *MockProvider) {
	gin.SetMode(gin.TestMode)
	mock := NewMockProvider()
	memo := NewMemoizer(mock)

	router := gin.New()
	NewHandler(memo, "ar").RegisterRoutes(router.Group("/"))
	return router, mock
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTranslateEndpoint(t *testing.T) {
	router, mock := newHandlerRouter()

	w := postJSON(router, "/translate", `{"text":"Latte","target":"ar"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Translated string `json:"translated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Translated != "لاتيه" {
		t.Errorf("translated = %q, want %q", resp.Translated, "لاتيه")
	}

	// missing target falls back to the configured default
	mock.Reset()
	w = postJSON(router, "/translate", `{"text":"Espresso"}`)
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Translated != "إسبريسو" {
		t.Errorf("default target translated = %q, want %q", resp.Translated, "إسبريسو")
	}

	// empty text short-circuits
	mock.Reset()
	w = postJSON(router, "/translate", `{"text":"  "}`)
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Translated != "" {
		t.Errorf("empty text translated = %q, want empty", resp.Translated)
	}
	if mock.Calls() != 0 {
		t.Errorf("provider called %d times for empty text", mock.Calls())
	}

	if w := postJSON(router, "/translate", `nope`); w.Code != http.StatusBadRequest {
		t.Errorf("bad json status = %d, want 400", w.Code)
	}
}

func TestTranslateAllEndpoint(t *testing.T) {
	router, _ := newHandlerRouter()

	w := postJSON(router, "/translate_all", `{"texts":["Latte","Espresso"],"target":"ar"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Translations []string `json:"translations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"لاتيه", "إسبريسو"}
	if len(resp.Translations) != len(want) {
		t.Fatalf("got %d translations, want %d", len(resp.Translations), len(want))
	}
	for i := range want {
		if resp.Translations[i] != want[i] {
			t.Errorf("translations[%d] = %q, want %q", i, resp.Translations[i], want[i])
		}
	}
}
