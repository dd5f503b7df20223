package entities

// CompletionRecord is the append-only billing fact written when a
// consultation completes.
//
// It lives in its own store, separate from the live queue: deleting a patient
// from the queue must not erase the clinic's billing history for past days.
type CompletionRecord struct {
	PatientID   int       `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Services    []Service `json:"services"`
}

// Total sums the record's service prices.
func (r CompletionRecord) Total() float64 {
	total := 0.0
	for _, s := range r.Services {
		total += s.Price
	}
	return total
}

// ServiceTally aggregates one service's usage within a single day.
type ServiceTally struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// LedgerEntry is the aggregated billing record for one completion date.
//
// It is fully derived from the completion log: rebuilt from scratch on every
// read, never mutated directly. PerService is seeded with every catalog
// service at zero so "most used"/"most profitable" have a defined answer on
// an empty day.
type LedgerEntry struct {
	Date         string               `json:"date"`
	Patients     []CompletionRecord   `json:"patients"`
	TotalRevenue float64              `json:"total_revenue"`
	PerService   map[int]ServiceTally `json:"per_service"`
}
