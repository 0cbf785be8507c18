package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"main/usecase"

	"github.com/gin-gonic/gin"
)

func setupInteractionsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewInteractionsHandler(usecase.NewInteractionService())
	router.POST("/interactions/check", h.CheckInteractions)
	router.GET("/medicine-info/:barcode", MedicineInfoHandler)
	return router
}

func TestCheckInteractionsHandler(t *testing.T) {
	router := setupInteractionsRouter()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantHits   int
	}{
		{
			name:       "interaction found",
			body:       `{"medicines": ["Aspirin", "Warfarin"]}`,
			wantStatus: http.StatusOK,
			wantHits:   1,
		},
		{
			name:       "no interaction",
			body:       `{"medicines": ["Aspirin", "Metformin"]}`,
			wantStatus: http.StatusOK,
			wantHits:   0,
		},
		{
			name:       "fewer than two names rejected",
			body:       `{"medicines": ["Aspirin"]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body rejected",
			body:       `{"medicines": "aspirin"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/interactions/check", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus != http.StatusOK {
				return
			}

			var response struct {
				Data struct {
					Interactions []json.RawMessage `json:"interactions"`
				} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if len(response.Data.Interactions) != tt.wantHits {
				t.Errorf("interactions = %d, want %d", len(response.Data.Interactions), tt.wantHits)
			}
		})
	}
}

func TestMedicineInfoHandler(t *testing.T) {
	router := setupInteractionsRouter()

	req := httptest.NewRequest(http.MethodGet, "/medicine-info/8699546334455", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/medicine-info/0000000000000", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown barcode", w.Code)
	}
}
