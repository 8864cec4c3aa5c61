package procurement

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func exportRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.GET("/vessels/:id/procurement/export", h.Export)
	return router
}

// Export validates requested_days exactly like the POST path; a
// missing param is a 400, not a silent one-day sheet.
func TestExport_RequiresRequestedDays(t *testing.T) {
	handler := NewHandler(newTestService(planFixture(), &mockAdjustments{}), nil)
	router := exportRouter(handler)

	req := httptest.NewRequest("GET", "/vessels/vessel-1/procurement/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if !strings.Contains(w.Body.String(), "requestedDays") {
		t.Errorf("expected requestedDays in error, got %s", w.Body.String())
	}
}

func TestExport_WritesCSVAttachment(t *testing.T) {
	handler := NewHandler(newTestService(planFixture(), &mockAdjustments{}), nil)
	router := exportRouter(handler)

	req := httptest.NewRequest(
		"GET",
		"/vessels/vessel-1/procurement/export?start_date=2024-06-01&requested_days=3",
		nil,
	)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv content type, got %s", ct)
	}
	if !strings.Contains(w.Body.String(), "Rice") {
		t.Errorf("expected Rice row in CSV, got %s", w.Body.String())
	}
}
