package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// Storefront: menu item with effective groups
// --------------------------------------------------
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, err := h.service.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// Storefront: category by slug with its items
// --------------------------------------------------
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	cat, err := h.service.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load category"})
		return
	}

	items, err := h.service.ListItemsByCategory(c.Request.Context(), cat.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load category items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": cat,
		"items":    items,
	})
}

// --------------------------------------------------
// Storefront: single customization option
// --------------------------------------------------
func (h *Handler) GetOption(c *gin.Context) {
	opt, err := h.service.GetOption(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customization option not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customization option"})
		return
	}

	c.JSON(http.StatusOK, opt)
}

// --------------------------------------------------
// Admin: create category
// --------------------------------------------------
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var category MenuCategory
	if err := c.BindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateCategory(c.Request.Context(), &category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// --------------------------------------------------
// Admin: create menu item
// --------------------------------------------------
func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var item MenuItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateMenuItem(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// Admin: create customization group
// --------------------------------------------------
func (h *AdminHandler) CreateGroup(c *gin.Context) {
	var group CustomizationGroup
	if err := c.BindJSON(&group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateGroup(c.Request.Context(), &group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, group)
}

// --------------------------------------------------
// Admin: create customization option
// --------------------------------------------------
func (h *AdminHandler) CreateOption(c *gin.Context) {
	var option CustomizationOption
	if err := c.BindJSON(&option); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateOption(c.Request.Context(), &option); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, option)
}

// --------------------------------------------------
// Admin: attach a group to a menu item (with overrides)
// --------------------------------------------------
func (h *AdminHandler) AssociateGroup(c *gin.Context) {
	var assoc ItemGroupAssociation
	if err := c.BindJSON(&assoc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	assoc.MenuItemID = c.Param("id")

	if err := h.service.AssociateGroup(c.Request.Context(), &assoc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assoc)
}
