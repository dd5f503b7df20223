package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salle_attente/internal/adapter/http/handlers/mocks"
	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBillingRouter(uc usecase.IBillingUseCase) *gin.Engine {
	r := gin.New()
	h := NewBillingHandler(uc)
	r.GET("/v1/billing/dates", h.GetDates)
	r.GET("/v1/billing/:date", h.GetLedger)
	r.GET("/v1/billing/:date/summary", h.GetSummary)
	return r
}

func TestBillingHandler_GetLedger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		r := newBillingRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/10-03-2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ledger with sorted service tallies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		r := newBillingRouter(uc)

		uc.EXPECT().Ledger(gomock.Any(), "2025-03-10").Return(entities.LedgerEntry{
			Date:         "2025-03-10",
			TotalRevenue: 40,
			Patients: []entities.CompletionRecord{{
				PatientID: 1, PatientName: "Martin Dupont", Date: "2025-03-10", Time: "11:03",
				Services: []entities.Service{{ID: 1, Name: "Consultation standard", Price: 25}, {ID: 2, Name: "Prise de sang", Price: 15}},
			}},
			PerService: map[int]entities.ServiceTally{
				2: {Name: "Prise de sang", Count: 1, Revenue: 15},
				1: {Name: "Consultation standard", Count: 1, Revenue: 25},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/2025-03-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Date         string  `json:"date"`
			TotalRevenue float64 `json:"total_revenue"`
			Services     []struct {
				ServiceID int `json:"service_id"`
			} `json:"services"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.TotalRevenue != 40 {
			t.Fatalf("expected total 40, got %v", body.TotalRevenue)
		}
		if len(body.Services) != 2 || body.Services[0].ServiceID != 1 || body.Services[1].ServiceID != 2 {
			t.Fatalf("expected services ordered by id, got %v", body.Services)
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		r := newBillingRouter(uc)

		uc.EXPECT().Ledger(gomock.Any(), "2025-03-10").Return(entities.LedgerEntry{}, errors.New("storage down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/2025-03-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestBillingHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingUseCase(ctrl)
	r := newBillingRouter(uc)

	uc.EXPECT().Summary(gomock.Any(), "2025-03-10").Return(usecase.BillingSummary{
		Date:           "2025-03-10",
		TotalRevenue:   65,
		MostUsed:       usecase.ServiceHighlight{Name: "Consultation standard", Count: 2, Revenue: 50},
		MostProfitable: usecase.ServiceHighlight{Name: "Radiographie", Count: 1, Revenue: 45},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/billing/2025-03-10/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	mostUsed, ok := body["most_used"].(map[string]any)
	if !ok || mostUsed["name"] != "Consultation standard" {
		t.Fatalf("unexpected most_used %v", body["most_used"])
	}
}

func TestBillingHandler_GetDates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingUseCase(ctrl)
	r := newBillingRouter(uc)

	uc.EXPECT().AvailableDates(gomock.Any()).Return([]string{"2025-03-11", "2025-03-10"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/billing/dates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Dates []string `json:"dates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Dates) != 2 || body.Dates[0] != "2025-03-11" {
		t.Fatalf("expected newest first, got %v", body.Dates)
	}
}
