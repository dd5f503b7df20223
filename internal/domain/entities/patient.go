package entities

// PatientStatus represents the lifecycle of a patient in the waiting room.
//
// Domain notes:
//   - Wire values stay in the clinic's domain language (French), the way the
//     front desk labels them.
//   - Several patients may be "en_consultation" at once: a clinic can run
//     more than one consultation room, so the count is intentionally
//     unbounded.
type PatientStatus string

const (
	PatientStatusWaiting        PatientStatus = "en_attente"
	PatientStatusInConsultation PatientStatus = "en_consultation"
	PatientStatusCompleted      PatientStatus = "termine"
)

// Patient is a visitor of the waiting room.
//
// Invariants:
//   - ID is unique and monotonically assigned within the live set.
//   - Status == completed <=> Services non-empty <=> CompletionTime and
//     CompletionDate both set.
//   - Status == en_consultation => EstimatedWaitMinutes == 0.
//
// AppointmentTime and CompletionTime are "HH:MM"; CompletionDate is
// "YYYY-MM-DD".
type Patient struct {
	ID                   int           `json:"id"`
	Name                 string        `json:"name"`
	AppointmentTime      string        `json:"appointment_time"`
	Status               PatientStatus `json:"status"`
	EstimatedWaitMinutes int           `json:"estimated_wait_minutes"`
	Services             []Service     `json:"services"`
	CompletionTime       *string       `json:"completion_time,omitempty"`
	CompletionDate       *string       `json:"completion_date,omitempty"`
}

// TotalBilling sums the prices of the services attached at completion.
func (p Patient) TotalBilling() float64 {
	total := 0.0
	for _, s := range p.Services {
		total += s.Price
	}
	return total
}
