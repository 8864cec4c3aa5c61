package vessel

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createVesselRequest struct {
	Name      string `json:"name"`
	CrewCount int    `json:"crew_count"`
}

type crewCountRequest struct {
	CrewCount int `json:"crew_count"`
}

// --------------------------------------------------
// Manager creates a vessel for their company account
// --------------------------------------------------
func (h *Handler) CreateVessel(c *gin.Context) {
	companyID := c.GetString("companyID")

	var req createVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	v, err := h.service.CreateVessel(
		c.Request.Context(),
		companyID,
		req.Name,
		req.CrewCount,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, v)
}

// --------------------------------------------------
// Manager lists their vessels
// --------------------------------------------------
func (h *Handler) ListMyVessels(c *gin.Context) {
	companyID := c.GetString("companyID")

	vessels, err := h.service.ListCompanyVessels(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vessels": vessels})
}

// --------------------------------------------------
// Manager updates the crew roster count
// --------------------------------------------------
func (h *Handler) SetCrewCount(c *gin.Context) {
	companyID := c.GetString("companyID")
	vesselID := c.Param("id")

	var req crewCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SetCrewCount(
		c.Request.Context(),
		vesselID,
		companyID,
		req.CrewCount,
	); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vessel_id":  vesselID,
		"crew_count": req.CrewCount,
	})
}
