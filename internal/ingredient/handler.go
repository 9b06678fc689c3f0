package ingredient

import (
	"errors"
	"net/http"

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
// GET /api/ingredients
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	ingredients, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	c.JSON(http.StatusOK, ingredients)
}

// --------------------------------------------------
// GET /api/ingredients/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	ing, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

// --------------------------------------------------
// POST /api/ingredients
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ing, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

// --------------------------------------------------
// PUT /api/ingredients/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ing, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

// --------------------------------------------------
// DELETE /api/ingredients/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps domain errors to the wire format the frontend expects:
// {"message": ..., "field": ...} for validation, {"message": ...} otherwise.
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
