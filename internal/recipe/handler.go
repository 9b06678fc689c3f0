package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/apperr"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/logger"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/recipes
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	recipes, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if recipes == nil {
		recipes = []Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// --------------------------------------------------
// GET /api/recipes/:id?margin=0.3
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	// Pricing guidance is display-derived; an explicit margin overrides
	// the 30% default without touching the stored recipe.
	if raw := c.Query("margin"); raw != "" {
		margin, err := strconv.ParseFloat(raw, 64)
		if err != nil || margin <= 0 || margin > 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "margin must be a fraction between 0 and 1",
				"field":   "margin",
			})
			return
		}
		detail.SuggestedPrice = SuggestedPrice(detail.TotalCost, margin)
	}

	c.JSON(http.StatusOK, detail)
}

// --------------------------------------------------
// POST /api/recipes
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	rec, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// --------------------------------------------------
// PUT /api/recipes/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	rec, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// --------------------------------------------------
// DELETE /api/recipes/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// POST /api/recipes/:id/ingredients
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var in AddItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// DELETE /api/recipes/:id/ingredients/:itemId
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.service.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	var vErr *apperr.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": vErr.Message,
			"field":   vErr.Field,
		})
		return
	}

	var nfErr *apperr.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, gin.H{"message": nfErr.Error()})
		return
	}

	var icErr *apperr.InconsistencyError
	if errors.As(err, &icErr) {
		logger.Error("persistence inconsistency", zap.Error(icErr))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	logger.Error("unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}
