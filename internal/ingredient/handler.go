package ingredient

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// List catalog (any authenticated user)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": items})
}

// --------------------------------------------------
// Admin: add catalog entry
// --------------------------------------------------

type createRequest struct {
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	StorageType  string   `json:"storage_type"`
	RefUnitPrice *float64 `json:"ref_unit_price"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Name == "" || req.Unit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and unit are required"})
		return
	}

	if req.StorageType == "" {
		req.StorageType = StorageDry
	}
	if !ValidStorageType(req.StorageType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid storage_type"})
		return
	}

	ing := &Ingredient{
		Name:         req.Name,
		Unit:         req.Unit,
		StorageType:  req.StorageType,
		RefUnitPrice: req.RefUnitPrice,
	}

	if err := h.repo.Create(c.Request.Context(), ing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ing)
}
