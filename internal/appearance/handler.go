package appearance

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store     *Store
	UploadURL string // public URL prefix for uploaded media
}

func NewHandler(store *Store, uploadURL string) *Handler {
	return &Handler{Store: store, UploadURL: uploadURL}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/background/settings", h.settings)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/background", h.set)
}

func (h *Handler) settings(c *gin.Context) {
	bg, err := h.Store.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read failed"})
		return
	}

	mediaPath := ""
	if bg.Type == TypeImage || bg.Type == TypeVideo {
		mediaPath = path.Join(h.UploadURL, bg.Value)
	}

	c.JSON(http.StatusOK, gin.H{
		"type":  bg.Type,
		"path":  mediaPath,
		"value": bg.Value,
	})
}

type setReq struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (h *Handler) set(c *gin.Context) {
	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	bg := Background{Type: strings.TrimSpace(req.Type), Value: strings.TrimSpace(req.Value)}
	if !ValidType(bg.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be one of: default, color, image, video"})
		return
	}
	if bg.Type == TypeDefault {
		bg.Value = ""
	}

	if err := h.Store.Set(bg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
