package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Saver *Saver
}

func NewHandler(saver *Saver) *Handler {
	return &Handler{Saver: saver}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/upload", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}

	name, dst, err := h.Saver.Plan(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"filename": name})
}
