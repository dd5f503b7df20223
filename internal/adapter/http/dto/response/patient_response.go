package response

import (
	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase"
)

type ServiceResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

type PatientResponse struct {
	ID                   int               `json:"id"`
	Name                 string            `json:"name"`
	AppointmentTime      string            `json:"appointment_time"`
	Status               string            `json:"status"`
	EstimatedWaitMinutes int               `json:"estimated_wait_minutes"`
	Services             []ServiceResponse `json:"services"`
	CompletionTime       *string           `json:"completion_time,omitempty"`
	CompletionDate       *string           `json:"completion_date,omitempty"`
	Total                float64           `json:"total"`
}

func FromPatient(p entities.Patient) PatientResponse {
	return PatientResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		AppointmentTime:      p.AppointmentTime,
		Status:               string(p.Status),
		EstimatedWaitMinutes: p.EstimatedWaitMinutes,
		Services:             FromServices(p.Services),
		CompletionTime:       p.CompletionTime,
		CompletionDate:       p.CompletionDate,
		Total:                p.TotalBilling(),
	}
}

func FromPatients(patients []entities.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, FromPatient(p))
	}
	return out
}

// QueueResponse is the waiting-room tab: live patients plus the slot the next
// admission would get.
type QueueResponse struct {
	Patients          []PatientResponse `json:"patients"`
	NextAvailableSlot string            `json:"next_available_slot"`
}

type ClockResponse struct {
	CurrentTime       string `json:"current_time"`
	CurrentDate       string `json:"current_date"`
	NextAvailableSlot string `json:"next_available_slot"`
}

func FromClockView(v usecase.ClockView) ClockResponse {
	return ClockResponse{
		CurrentTime:       v.CurrentTime,
		CurrentDate:       v.CurrentDate,
		NextAvailableSlot: v.NextAvailable,
	}
}
