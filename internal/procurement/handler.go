package procurement

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// OrderSheetUploader pushes an exported order sheet to object
// storage and returns its public URL.
type OrderSheetUploader interface {
	UploadOrderSheet(ctx context.Context, vesselID string, data []byte) (string, error)
}

type Handler struct {
	service  *Service
	uploader OrderSheetUploader
}

func NewHandler(service *Service, uploader OrderSheetUploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

type generateRequest struct {
	StartDate     string `json:"start_date"`
	RequestedDays int    `json:"requested_days"`
	EffectiveDays *int   `json:"effective_days"`
}

type adjustmentRequest struct {
	IngredientID  int     `json:"ingredient_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	PlannedAmount float64 `json:"planned_amount"`
	OrderAmount   float64 `json:"order_amount"`
	InStock       bool    `json:"in_stock"`
	UnitPrice     float64 `json:"unit_price"`
}

func (r generateRequest) toRequest(vesselID string) (Request, error) {
	req := Request{
		VesselID:      vesselID,
		RequestedDays: r.RequestedDays,
		EffectiveDays: r.EffectiveDays,
	}

	if r.StartDate != "" {
		start, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return Request{}, &ValidationError{Field: "startDate", Reason: "must be YYYY-MM-DD"}
		}
		req.StartDate = &start
	}

	return req, nil
}

// --------------------------------------------------
// Generate the consolidated order list
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	vesselID := c.Param("id")

	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	req, err := body.toRequest(vesselID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		if IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// Upsert a manual adjustment
// --------------------------------------------------
func (h *Handler) SaveAdjustment(c *gin.Context) {
	vesselID := c.Param("id")

	var body adjustmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	start, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	adj := &Adjustment{
		VesselID:      vesselID,
		IngredientID:  body.IngredientID,
		StartDate:     start,
		EndDate:       end,
		PlannedAmount: body.PlannedAmount,
		OrderAmount:   body.OrderAmount,
		InStock:       body.InStock,
		UnitPrice:     body.UnitPrice,
	}

	if err := h.service.SaveAdjustment(c.Request.Context(), adj); err != nil {
		if IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, adj)
}

// --------------------------------------------------
// Export the order list as CSV
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	vesselID := c.Param("id")

	req, err := exportRequestFromQuery(c, vesselID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		if IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := WriteCSV(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// upload=true stores the sheet and returns its public URL
	if c.Query("upload") == "true" && h.uploader != nil {
		url, err := h.uploader.UploadOrderSheet(c.Request.Context(), vesselID, data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="procurement.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// Export takes the same fields as Generate, as query params. A
// missing requested_days fails validation exactly like the POST path.
func exportRequestFromQuery(c *gin.Context, vesselID string) (Request, error) {
	var body generateRequest

	if v := c.Query("requested_days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, &ValidationError{Field: "requestedDays", Reason: "must be an integer"}
		}
		body.RequestedDays = days
	}
	if v := c.Query("effective_days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, &ValidationError{Field: "effectiveDays", Reason: "must be an integer"}
		}
		body.EffectiveDays = &days
	}
	body.StartDate = c.Query("start_date")

	return body.toRequest(vesselID)
}
