package catalog

import "salle_attente/internal/domain/entities"

// Catalog is the clinic's static service catalog.
//
// It is immutable after construction; every read returns copies so callers
// cannot alter the reference data.
type Catalog struct {
	services []entities.Service
	byID     map[int]entities.Service
}

func New(services []entities.Service) *Catalog {
	c := &Catalog{
		services: make([]entities.Service, len(services)),
		byID:     make(map[int]entities.Service, len(services)),
	}
	copy(c.services, services)
	for _, s := range c.services {
		c.byID[s.ID] = s
	}
	return c
}

// Default returns the clinic's standard catalog.
func Default() *Catalog {
	return New([]entities.Service{
		{ID: 1, Name: "Consultation standard", Price: 25},
		{ID: 2, Name: "Prise de sang", Price: 15},
		{ID: 3, Name: "Radiographie", Price: 45},
		{ID: 4, Name: "Échographie", Price: 60},
		{ID: 5, Name: "Vaccination", Price: 30},
		{ID: 6, Name: "Électrocardiogramme", Price: 40},
	})
}

func (c *Catalog) Lookup(id int) (entities.Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Services returns the catalog entries in catalog order.
func (c *Catalog) Services() []entities.Service {
	out := make([]entities.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Resolve filters a selection of service ids against the catalog.
//
// Unknown ids are silently dropped. The result follows catalog order, not
// selection order, and duplicate ids count once.
func (c *Catalog) Resolve(ids []int) []entities.Service {
	selected := make(map[int]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	var out []entities.Service
	for _, s := range c.services {
		if selected[s.ID] {
			out = append(out, s)
		}
	}
	return out
}
