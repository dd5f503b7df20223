package catalog

import (
	"reflect"
	"testing"

	"salle_attente/internal/domain/entities"
)

func TestDefault(t *testing.T) {
	c := Default()

	services := c.Services()
	if len(services) != 6 {
		t.Fatalf("expected 6 services, got %d", len(services))
	}
	if services[0].Name != "Consultation standard" || services[0].Price != 25 {
		t.Fatalf("unexpected first service %v", services[0])
	}
	if services[5].Name != "Électrocardiogramme" || services[5].Price != 40 {
		t.Fatalf("unexpected last service %v", services[5])
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	s, ok := c.Lookup(4)
	if !ok {
		t.Fatal("expected service 4 to exist")
	}
	if s.Name != "Échographie" || s.Price != 60 {
		t.Fatalf("unexpected service %v", s)
	}

	if _, ok := c.Lookup(99); ok {
		t.Fatal("expected service 99 to be unknown")
	}
}

func TestCatalog_Resolve(t *testing.T) {
	c := Default()

	t.Run("catalog order, unknowns dropped, duplicates once", func(t *testing.T) {
		got := c.Resolve([]int{5, 99, 2, 2})
		want := []entities.Service{
			{ID: 2, Name: "Prise de sang", Price: 15},
			{ID: 5, Name: "Vaccination", Price: 30},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("all unknown resolves to nothing", func(t *testing.T) {
		if got := c.Resolve([]int{0, 7, -1}); len(got) != 0 {
			t.Fatalf("expected empty resolution, got %v", got)
		}
	})
}

func TestCatalog_ServicesReturnsCopy(t *testing.T) {
	c := Default()

	services := c.Services()
	services[0].Price = 999

	if again := c.Services(); again[0].Price != 25 {
		t.Fatalf("catalog shares memory with caller: price is %v", again[0].Price)
	}
}
