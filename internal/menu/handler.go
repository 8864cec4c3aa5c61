package menu

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type generateRequest struct {
	StartDate string `json:"start_date"`
	Days      int    `json:"days"`
}

type swapRequest struct {
	EntryID      int `json:"entry_id"`
	FromRecipeID int `json:"from_recipe_id"`
	ToRecipeID   int `json:"to_recipe_id"`
}

// --------------------------------------------------
// Chef generates a plan window
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	vesselID := c.Param("id")

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}

	entries, err := h.service.GeneratePlan(c.Request.Context(), vesselID, start, req.Days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"vessel_id": vesselID,
		"entries":   toResponse(entries),
	})
}

// --------------------------------------------------
// Read a plan window
// --------------------------------------------------
func (h *Handler) GetPlan(c *gin.Context) {
	vesselID := c.Param("id")

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
		return
	}

	entries, err := h.service.GetPlan(c.Request.Context(), vesselID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vessel_id": vesselID,
		"entries":   toResponse(entries),
	})
}

// --------------------------------------------------
// Chef swaps a recipe on one entry
// --------------------------------------------------
func (h *Handler) Swap(c *gin.Context) {
	vesselID := c.Param("id")

	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SwapRecipe(
		c.Request.Context(),
		vesselID,
		req.EntryID,
		req.FromRecipeID,
		req.ToRecipeID,
	); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe swapped"})
}

func toResponse(entries []PlanEntry) []gin.H {
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"id":           e.ID,
			"date":         e.Date.Format(dateLayout),
			"meal_type":    e.MealType,
			"recipe_ids":   e.RecipeIDs,
			"health_score": e.HealthScore,
		})
	}
	return out
}
