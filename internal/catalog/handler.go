package catalog

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"menuhub/internal/bilingual"
	"menuhub/internal/live"
)

type Handler struct {
	Repo   *Repo
	Engine *bilingual.Engine
	Hub    *live.Hub
}

func NewHandler(repo *Repo, engine *bilingual.Engine, hub *live.Hub) *Handler {
	return &Handler{Repo: repo, Engine: engine, Hub: hub}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", h.listMenu)
	rg.GET("/categories", h.listCategories)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/categories/add", h.addCategory)
	rg.POST("/categories/delete", h.deleteCategory)

	rg.POST("/admin/items", h.createItem)
	rg.GET("/admin/items/:id", h.getItem)
	rg.PUT("/admin/items/:id", h.updateItem)
	rg.DELETE("/admin/items/:id", h.deleteItem)
}

func (h *Handler) listMenu(c *gin.Context) {
	items, err := h.Repo.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) listCategories(c *gin.Context) {
	names, err := h.Repo.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": names})
}

type categoryReq struct {
	Name string `json:"name"`
}

func (h *Handler) addCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	status, err := h.Repo.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "add failed"})
		return
	}

	if status == StatusAdded {
		h.broadcast(live.MenuEvent{
			Type:     live.EventCategoryAdded,
			Category: strings.TrimSpace(req.Name),
			At:       time.Now().UTC(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": string(status)})
}

func (h *Handler) deleteCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	status, err := h.Repo.DeleteCategory(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	if status == StatusDeleted {
		h.broadcast(live.MenuEvent{
			Type:     live.EventCategoryDeleted,
			Category: strings.TrimSpace(req.Name),
			At:       time.Now().UTC(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": string(status)})
}

type itemReq struct {
	Category string `json:"category"`
	NameEN   string `json:"name_en"`
	NameAR   string `json:"name_ar"`
	Price    string `json:"price"`
	Origin   string `json:"origin"`
	Process  string `json:"process"`
	Flavors  string `json:"flavors"`
	Image    string `json:"image"`
}

func (h *Handler) createItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if strings.TrimSpace(req.NameEN) == "" && strings.TrimSpace(req.NameAR) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_en or name_ar required"})
		return
	}

	nameEN, nameAR := h.Engine.Complete(c.Request.Context(), req.NameEN, req.NameAR)

	item, err := h.Repo.CreateItem(c.Request.Context(), ItemFields{
		Category: strings.TrimSpace(req.Category),
		NameEN:   nameEN,
		NameAR:   nameAR,
		Price:    strings.TrimSpace(req.Price),
		Origin:   strings.TrimSpace(req.Origin),
		Process:  strings.TrimSpace(req.Process),
		Flavors:  strings.TrimSpace(req.Flavors),
		Image:    strings.TrimSpace(req.Image),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	h.broadcast(live.MenuEvent{Type: live.EventItemCreated, ItemID: item.ID, Category: item.Category, At: time.Now().UTC()})
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) getItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}

	item, err := h.Repo.GetItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) updateItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}

	existing, err := h.Repo.GetItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if strings.TrimSpace(req.NameEN) == "" && strings.TrimSpace(req.NameAR) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_en or name_ar required"})
		return
	}

	nameEN, nameAR := h.Engine.Complete(c.Request.Context(), req.NameEN, req.NameAR)

	err = h.Repo.UpdateItem(c.Request.Context(), id, ItemFields{
		Category: strings.TrimSpace(req.Category),
		NameEN:   nameEN,
		NameAR:   nameAR,
		Price:    strings.TrimSpace(req.Price),
		Origin:   strings.TrimSpace(req.Origin),
		Process:  strings.TrimSpace(req.Process),
		Flavors:  strings.TrimSpace(req.Flavors),
		Image:    strings.TrimSpace(req.Image), // empty keeps the stored image
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	updated, err := h.Repo.GetItem(c.Request.Context(), id)
	if err != nil || updated == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	h.broadcast(live.MenuEvent{Type: live.EventItemUpdated, ItemID: id, Category: updated.Category, At: time.Now().UTC()})
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id required"})
		return
	}

	if err := h.Repo.DeleteItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	h.broadcast(live.MenuEvent{Type: live.EventItemDeleted, ItemID: id, At: time.Now().UTC()})
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) broadcast(ev live.MenuEvent) {
	if h.Hub != nil {
		h.Hub.BroadcastJSON(ev)
	}
}
