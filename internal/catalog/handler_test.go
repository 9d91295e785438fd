package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"menuhub/internal/bilingual"
	"menuhub/internal/translate"
	"menuhub/pkg/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *translate.MockProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newTestRepo(t)
	mock := translate.NewMockProvider()
	memo := translate.NewMemoizer(mock)
	engine := bilingual.NewEngine(memo, "en", "ar")

	h := NewHandler(repo, engine, nil)
	router := gin.New()
	g := router.Group("/")
	h.RegisterPublicRoutes(g)
	// auth is exercised in its own package; these routes assume authorized callers
	h.RegisterProtectedRoutes(g)
	return router, mock
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateItem_DerivesArabicName(t *testing.T) {
	router, mock := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/admin/items", gin.H{
		"category": "Black",
		"name_en":  "Latte",
		"name_ar":  "",
		"price":    "3.50",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var item models.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.NameEN != "Latte" {
		t.Errorf("name_en = %q, want unchanged %q", item.NameEN, "Latte")
	}
	if item.NameAR != "لاتيه" {
		t.Errorf("name_ar = %q, want derived %q", item.NameAR, "لاتيه")
	}
	if mock.Calls() != 1 {
		t.Errorf("provider called %d times, want 1", mock.Calls())
	}

	// stored item shows up on the public menu
	w = doJSON(t, router, http.MethodGet, "/menu", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("menu status = %d", w.Code)
	}
	var listed struct {
		Items []models.MenuItem `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode menu: %v", err)
	}
	if len(listed.Items) != 1 || listed.Items[0].ID != item.ID {
		t.Errorf("menu = %+v, want the created item", listed.Items)
	}
}

func TestCreateItem_BothNamesEmptyRejected(t *testing.T) {
	router, mock := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/admin/items", gin.H{
		"category": "Black",
		"name_en":  "  ",
		"name_ar":  "",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if mock.Calls() != 0 {
		t.Errorf("provider called %d times, want 0", mock.Calls())
	}
}

func TestUpdateItem_RunsCompletionAndKeepsImage(t *testing.T) {
	router, mock := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/admin/items", gin.H{
		"name_en": "Latte",
		"name_ar": "لاتيه",
		"image":   "latte.jpg",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	var item models.MenuItem
	_ = json.Unmarshal(w.Body.Bytes(), &item)
	if mock.Calls() != 0 {
		t.Fatalf("create with both names called provider %d times", mock.Calls())
	}

	// edit with only the Arabic name cleared: it gets re-derived
	w = doJSON(t, router, http.MethodPut, "/admin/items/"+item.ID, gin.H{
		"name_en": "Iced Latte",
		"name_ar": "",
		"price":   "4.50",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	var updated models.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.NameAR == "" {
		t.Error("name_ar not derived on edit")
	}
	if updated.Image != "latte.jpg" {
		t.Errorf("image = %q, want preserved %q", updated.Image, "latte.jpg")
	}
	if mock.Calls() != 1 {
		t.Errorf("provider called %d times on edit, want 1", mock.Calls())
	}
}

func TestUpdateItem_UnknownID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/admin/items/no-such-id", gin.H{"name_en": "Ghost"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCategoryEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	decode := func(w *httptest.ResponseRecorder) string {
		var resp struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		return resp.Status
	}

	w := doJSON(t, router, http.MethodPost, "/categories/add", gin.H{"name": "Black"})
	if got := decode(w); got != "added" {
		t.Errorf("first add status = %q, want added", got)
	}

	w = doJSON(t, router, http.MethodPost, "/categories/add", gin.H{"name": "Black"})
	if got := decode(w); got != "exists" {
		t.Errorf("second add status = %q, want exists", got)
	}

	w = doJSON(t, router, http.MethodPost, "/categories/add", gin.H{"name": " "})
	if got := decode(w); got != "empty" {
		t.Errorf("blank add status = %q, want empty", got)
	}

	w = doJSON(t, router, http.MethodGet, "/categories", nil)
	var listed struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	count := 0
	for _, n := range listed.Categories {
		if n == "Black" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Black listed %d times, want 1", count)
	}

	w = doJSON(t, router, http.MethodPost, "/categories/delete", gin.H{"name": "Black"})
	if got := decode(w); got != "deleted" {
		t.Errorf("delete status = %q, want deleted", got)
	}
	w = doJSON(t, router, http.MethodPost, "/categories/delete", gin.H{"name": "Black"})
	if got := decode(w); got != "deleted" {
		t.Errorf("repeat delete status = %q, want deleted", got)
	}
}
