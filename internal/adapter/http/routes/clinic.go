package routes

import (
	"salle_attente/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPatients = "/patients"
	PathQueue    = "/queue"
	PathServices = "/services"
	PathClock    = "/clock"
	PathBilling  = "/billing"
)

func addClinicRoutes(rg *gin.RouterGroup, patientHandler *handlers.PatientHandler, billingHandler *handlers.BillingHandler) {
	patients := rg.Group(PathPatients)
	{
		patients.POST("", patientHandler.CreatePatient)
		patients.GET("", patientHandler.ListPatients)
		patients.POST("/:id/start", patientHandler.StartConsultation)
		patients.POST("/:id/complete", patientHandler.CompleteConsultation)
		patients.DELETE("/:id", patientHandler.DeletePatient)
	}

	rg.GET(PathQueue, patientHandler.GetQueue)
	rg.GET(PathServices, patientHandler.ListServices)
	rg.GET(PathClock, patientHandler.GetClock)

	billing := rg.Group(PathBilling)
	{
		billing.GET("/dates", billingHandler.GetDates)
		billing.GET("/:date", billingHandler.GetLedger)
		billing.GET("/:date/summary", billingHandler.GetSummary)
	}
}
