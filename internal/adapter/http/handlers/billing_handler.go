package handlers

import (
	"net/http"
	"regexp"

	response "salle_attente/internal/adapter/http/dto/response"
	"salle_attente/internal/usecase"
	"salle_attente/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBillingDate = pkg.NewDomainErrorSimple("INVALID_BILLING_DATE", "Billing date must be YYYY-MM-DD", http.StatusBadRequest)

	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// BillingHandler handles HTTP requests for the per-date revenue ledger.
type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// GetLedger returns the full ledger entry for one date. An unknown date
// yields an empty entry, not a 404: a day with no revenue is a valid answer.
func (h *BillingHandler) GetLedger(c *gin.Context) {
	date, ok := h.billingDate(c)
	if !ok {
		return
	}

	entry, err := h.usecase.Ledger(c.Request.Context(), date)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLedgerEntry(entry))
}

// GetSummary returns the stats row for one date.
func (h *BillingHandler) GetSummary(c *gin.Context) {
	date, ok := h.billingDate(c)
	if !ok {
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), date)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillingSummary(summary))
}

// GetDates lists every date with billing activity, newest first.
func (h *BillingHandler) GetDates(c *gin.Context) {
	dates, err := h.usecase.AvailableDates(c.Request.Context())
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DatesResponse{Dates: dates})
}

func (h *BillingHandler) billingDate(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if !datePattern.MatchString(date) {
		c.JSON(errInvalidBillingDate.HTTPStatus, errInvalidBillingDate.ToHTTPError())
		return "", false
	}
	return date, true
}

func mapBillingError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
