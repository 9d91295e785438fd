package translate

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Memo          *Memoizer
	DefaultTarget string
}

func NewHandler(memo *Memoizer, defaultTarget string) *Handler {
	return &Handler{Memo: memo, DefaultTarget: defaultTarget}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/translate", h.translate)
	rg.POST("/translate_all", h.translateAll)
}

type translateReq struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

func (h *Handler) translate(c *gin.Context) {
	var req translateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusOK, gin.H{"translated": ""})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"translated": h.Memo.Translate(c.Request.Context(), text, h.target(req.Target)),
	})
}

type translateAllReq struct {
	Texts  []string `json:"texts"`
	Target string   `json:"target"`
}

func (h *Handler) translateAll(c *gin.Context) {
	var req translateAllReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"translations": h.Memo.TranslateAll(c.Request.Context(), req.Texts, h.target(req.Target)),
	})
}

func (h *Handler) target(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return h.DefaultTarget
	}
	return t
}
