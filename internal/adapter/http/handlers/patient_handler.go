package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "salle_attente/internal/adapter/http/dto/request"
	response "salle_attente/internal/adapter/http/dto/response"
	"salle_attente/internal/domain/catalog"
	"salle_attente/internal/usecase"
	"salle_attente/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPatientPayload = pkg.NewDomainErrorSimple("INVALID_PATIENT_INPUT", "Invalid patient payload", http.StatusBadRequest)
	errInvalidPatientID      = pkg.NewDomainErrorSimple("INVALID_PATIENT_ID", "Invalid patient id", http.StatusBadRequest)
)

// PatientHandler handles HTTP requests for the waiting-room queue.
//
// It holds no queue logic: payloads are bound and normalized here, everything
// else is the queue usecase's business.
type PatientHandler struct {
	usecase usecase.IQueueUseCase
	catalog *catalog.Catalog
}

func NewPatientHandler(uc usecase.IQueueUseCase, cat *catalog.Catalog) *PatientHandler {
	return &PatientHandler{usecase: uc, catalog: cat}
}

// CreatePatient admits a new patient and returns it with its assigned slot.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var payload request.CreatePatientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPatientPayload.HTTPStatus, errInvalidPatientPayload.ToHTTPError())
		return
	}

	patient, err := h.usecase.Add(c.Request.Context(), payload.ResolveName())
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPatient(patient))
}

// ListPatients returns every patient in storage order, completed included.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.usecase.Patients(c.Request.Context())
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPatients(patients))
}

// GetQueue returns the live queue plus the next free appointment slot.
func (h *PatientHandler) GetQueue(c *gin.Context) {
	ctx := c.Request.Context()

	patients, err := h.usecase.QueueView(ctx)
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	view, err := h.usecase.ClockView(ctx)
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QueueResponse{
		Patients:          response.FromPatients(patients),
		NextAvailableSlot: view.NextAvailable,
	})
}

// StartConsultation moves a waiting patient into consultation.
func (h *PatientHandler) StartConsultation(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	patient, err := h.usecase.Start(c.Request.Context(), id)
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPatient(patient))
}

// CompleteConsultation closes a consultation with the selected services.
func (h *PatientHandler) CompleteConsultation(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	var payload request.CompleteConsultationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPatientPayload.HTTPStatus, errInvalidPatientPayload.ToHTTPError())
		return
	}

	patient, err := h.usecase.Complete(c.Request.Context(), id, payload.ResolveServiceIDs())
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPatient(patient))
}

// DeletePatient removes a patient from the queue.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListServices exposes the read-only catalog for the selection UI.
func (h *PatientHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServices(h.catalog.Services()))
}

// GetClock returns the front-desk header state.
func (h *PatientHandler) GetClock(c *gin.Context) {
	view, err := h.usecase.ClockView(c.Request.Context())
	if err != nil {
		appErr := mapQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClockView(view))
}

func (h *PatientHandler) patientID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidPatientID.HTTPStatus, errInvalidPatientID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapQueueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyPatientName):
		return pkg.NewDomainErrorSimple("EMPTY_PATIENT_NAME", "Patient name must not be empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyServiceSelection):
		return pkg.NewDomainErrorSimple("EMPTY_SERVICE_SELECTION", "At least one known service must be selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPatientNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPatientNotWaiting):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_WAITING", "Patient is not waiting", http.StatusConflict)
	case errors.Is(err, usecase.ErrPatientNotInConsultation):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_IN_CONSULTATION", "Patient is not in consultation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
