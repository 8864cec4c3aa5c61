package feedback

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

type submitRequest struct {
	Date     string `json:"date"`
	MealType string `json:"meal_type"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// --------------------------------------------------
// Crew rates a meal
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	vesselID := c.Param("id")
	userID := c.GetString("userID")

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	f := &Feedback{
		VesselID: vesselID,
		UserID:   userID,
		Date:     date,
		MealType: req.MealType,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := h.service.Submit(c.Request.Context(), f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, f)
}

// --------------------------------------------------
// Manager reads the rollup
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
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

	summaries, err := h.service.Summarize(c.Request.Context(), vesselID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vessel_id": vesselID,
		"summaries": summaries,
	})
}
