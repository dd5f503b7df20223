package response

import (
	"sort"

	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase"
)

type CompletionResponse struct {
	PatientID   int               `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Services    []ServiceResponse `json:"services"`
	Total       float64           `json:"total"`
}

func FromCompletion(r entities.CompletionRecord) CompletionResponse {
	return CompletionResponse{
		PatientID:   r.PatientID,
		PatientName: r.PatientName,
		Date:        r.Date,
		Time:        r.Time,
		Services:    FromServices(r.Services),
		Total:       r.Total(),
	}
}

type ServiceTallyResponse struct {
	ServiceID int     `json:"service_id"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
}

type LedgerEntryResponse struct {
	Date         string                 `json:"date"`
	Patients     []CompletionResponse   `json:"patients"`
	TotalRevenue float64                `json:"total_revenue"`
	Services     []ServiceTallyResponse `json:"services"`
}

// FromLedgerEntry flattens the per-service map into a slice ordered by
// service id, so the JSON shape is stable between requests.
func FromLedgerEntry(e entities.LedgerEntry) LedgerEntryResponse {
	patients := make([]CompletionResponse, 0, len(e.Patients))
	for _, r := range e.Patients {
		patients = append(patients, FromCompletion(r))
	}

	services := make([]ServiceTallyResponse, 0, len(e.PerService))
	for id, tally := range e.PerService {
		services = append(services, ServiceTallyResponse{
			ServiceID: id,
			Name:      tally.Name,
			Count:     tally.Count,
			Revenue:   tally.Revenue,
		})
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ServiceID < services[j].ServiceID })

	return LedgerEntryResponse{
		Date:         e.Date,
		Patients:     patients,
		TotalRevenue: e.TotalRevenue,
		Services:     services,
	}
}

type ServiceHighlightResponse struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type BillingSummaryResponse struct {
	Date           string                   `json:"date"`
	TotalRevenue   float64                  `json:"total_revenue"`
	MostUsed       ServiceHighlightResponse `json:"most_used"`
	MostProfitable ServiceHighlightResponse `json:"most_profitable"`
}

func FromBillingSummary(s usecase.BillingSummary) BillingSummaryResponse {
	return BillingSummaryResponse{
		Date:           s.Date,
		TotalRevenue:   s.TotalRevenue,
		MostUsed:       fromHighlight(s.MostUsed),
		MostProfitable: fromHighlight(s.MostProfitable),
	}
}

func fromHighlight(h usecase.ServiceHighlight) ServiceHighlightResponse {
	return ServiceHighlightResponse{Name: h.Name, Count: h.Count, Revenue: h.Revenue}
}

type DatesResponse struct {
	Dates []string `json:"dates"`
}
