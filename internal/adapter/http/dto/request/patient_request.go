package request

import "strings"

// CreatePatientRequest admits a new patient into the waiting room.
type CreatePatientRequest struct {
	Name string `json:"name" binding:"required"`
}

// ResolveName trims surrounding whitespace; a blank name resolves to "".
func (r CreatePatientRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

// CompleteConsultationRequest closes a consultation with the billed services.
type CompleteConsultationRequest struct {
	ServiceIDs []int `json:"service_ids" binding:"required"`
}

// ResolveServiceIDs deduplicates the selection while keeping first-seen
// order. The service modal toggles checkboxes, but the API cannot assume a
// well-behaved caller: a duplicated id must not bill a service twice.
func (r CompleteConsultationRequest) ResolveServiceIDs() []int {
	seen := make(map[int]bool, len(r.ServiceIDs))
	out := make([]int, 0, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
