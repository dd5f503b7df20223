package entities

// Service is a catalog entry for a priced medical act.
//
// The catalog is fixed reference data loaded at startup and never mutated;
// prices are in euros.
type Service struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
