package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salle_attente/internal/adapter/http/handlers/mocks"
	"salle_attente/internal/domain/catalog"
	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPatientRouter(uc usecase.IQueueUseCase) *gin.Engine {
	r := gin.New()
	h := NewPatientHandler(uc, catalog.Default())
	r.POST("/v1/patients", h.CreatePatient)
	r.GET("/v1/patients", h.ListPatients)
	r.GET("/v1/queue", h.GetQueue)
	r.GET("/v1/services", h.ListServices)
	r.GET("/v1/clock", h.GetClock)
	r.POST("/v1/patients/:id/start", h.StartConsultation)
	r.POST("/v1/patients/:id/complete", h.CompleteConsultation)
	r.DELETE("/v1/patients/:id", h.DeletePatient)
	return r
}

func TestPatientHandler_CreatePatient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank name rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Add(gomock.Any(), "").Return(entities.Patient{}, usecase.ErrEmptyPatientName)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients", bytes.NewBufferString(`{"name":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Add(gomock.Any(), "Martin Dupont").Return(entities.Patient{
			ID: 1, Name: "Martin Dupont", AppointmentTime: "09:45",
			Status: entities.PatientStatusWaiting, EstimatedWaitMinutes: 15,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients", bytes.NewBufferString(`{"name":"Martin Dupont"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["appointment_time"] != "09:45" || body["status"] != "en_attente" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestPatientHandler_StartConsultation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients/abc/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Start(gomock.Any(), 42).Return(entities.Patient{}, usecase.ErrPatientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients/42/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("wrong status maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Start(gomock.Any(), 2).Return(entities.Patient{}, usecase.ErrPatientNotWaiting)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients/2/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Start(gomock.Any(), 2).Return(entities.Patient{
			ID: 2, Name: "Sophie Bernard", Status: entities.PatientStatusInConsultation,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients/2/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPatientHandler_CompleteConsultation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients/2/complete", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate ids deduplicated before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Complete(gomock.Any(), 2, []int{1, 2}).Return(entities.Patient{
			ID: 2, Status: entities.PatientStatusCompleted,
			Services: []entities.Service{{ID: 1, Name: "Consultation standard", Price: 25}, {ID: 2, Name: "Prise de sang", Price: 15}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients/2/complete", bytes.NewBufferString(`{"service_ids":[1,2,1]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["total"] != 40.0 {
			t.Fatalf("expected total 40, got %v", body["total"])
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Complete(gomock.Any(), 2, []int{}).Return(entities.Patient{}, usecase.ErrEmptyServiceSelection)

		req := httptest.NewRequest(http.MethodPost, "/v1/patients/2/complete", bytes.NewBufferString(`{"service_ids":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPatientHandler_DeletePatient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Delete(gomock.Any(), 3).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/patients/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		r := newPatientRouter(uc)

		uc.EXPECT().Delete(gomock.Any(), 3).Return(usecase.ErrPatientNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/patients/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPatientHandler_GetQueue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQueueUseCase(ctrl)
	r := newPatientRouter(uc)

	uc.EXPECT().QueueView(gomock.Any()).Return([]entities.Patient{
		{ID: 1, Name: "Martin Dupont", Status: entities.PatientStatusWaiting, EstimatedWaitMinutes: 15},
	}, nil)
	uc.EXPECT().ClockView(gomock.Any()).Return(usecase.ClockView{
		CurrentTime: "08:55", CurrentDate: "2025-03-10", NextAvailable: "09:15",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/queue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["next_available_slot"] != "09:15" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestPatientHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQueueUseCase(ctrl)
	r := newPatientRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var services []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &services); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(services) != 6 || services[0]["name"] != "Consultation standard" {
		t.Fatalf("unexpected catalog %v", services)
	}
}
