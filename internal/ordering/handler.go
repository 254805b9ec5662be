package ordering

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

// --------------------------------------------------
// Validate a selection before checkout
// --------------------------------------------------
func (h *Handler) Validate(c *gin.Context) {
	var sel MenuItemSelection
	if err := c.BindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_item_id is required"})
		return
	}

	// always 200: user problems live inside the result, never in the
	// HTTP status
	c.JSON(http.StatusOK, h.engine.Validate(c.Request.Context(), sel))
}

// --------------------------------------------------
// Price a validated selection
// --------------------------------------------------
func (h *Handler) Price(c *gin.Context) {
	var sel MenuItemSelection
	if err := c.BindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_item_id is required"})
		return
	}

	pricing, err := h.engine.Price(c.Request.Context(), sel)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pricing)
}

// --------------------------------------------------
// Build the denormalized cart line
// --------------------------------------------------
func (h *Handler) CartItem(c *gin.Context) {
	var sel MenuItemSelection
	if err := c.BindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_item_id is required"})
		return
	}

	formatted, err := h.engine.FormatForCart(c.Request.Context(), sel)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, formatted)
}

// --------------------------------------------------
// Incremental side picking for dinner plates
// --------------------------------------------------
func (h *Handler) ChooseSides(c *gin.Context) {
	var selected []string
	if raw := c.Query("selected"); raw != "" {
		selected = strings.Split(raw, ",")
	}

	result, err := h.engine.GetChooseSides(c.Request.Context(), c.Param("id"), selected)
	if err != nil {
		if errors.Is(err, ErrNoSidesGroup) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
