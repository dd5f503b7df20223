package repository

import (
	"context"
	"testing"

	"salle_attente/internal/domain/entities"
)

func TestCompletionMemoryRepository_AppendAndList(t *testing.T) {
	repo := NewCompletionMemoryRepository()
	ctx := context.Background()

	first := entities.CompletionRecord{
		PatientID: 1, PatientName: "Martin Dupont", Date: "2025-03-10", Time: "11:03",
		Services: []entities.Service{{ID: 1, Name: "Consultation standard", Price: 25}},
	}
	second := entities.CompletionRecord{
		PatientID: 2, PatientName: "Sophie Bernard", Date: "2025-03-10", Time: "11:45",
		Services: []entities.Service{{ID: 3, Name: "Radiographie", Price: 45}},
	}

	if _, err := repo.Append(ctx, first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := repo.Append(ctx, second); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].PatientID != 1 || records[1].PatientID != 2 {
		t.Fatalf("expected append order, got %v", records)
	}
}

func TestCompletionMemoryRepository_CopyIsolation(t *testing.T) {
	repo := NewCompletionMemoryRepository()
	ctx := context.Background()

	services := []entities.Service{{ID: 1, Name: "Consultation standard", Price: 25}}
	repo.Append(ctx, entities.CompletionRecord{PatientID: 1, Services: services})

	services[0].Price = 0

	records, _ := repo.List(ctx)
	if records[0].Services[0].Price != 25 {
		t.Fatalf("log shares memory with caller: price is %v", records[0].Services[0].Price)
	}

	records[0].Services[0].Name = "tampered"
	again, _ := repo.List(ctx)
	if again[0].Services[0].Name != "Consultation standard" {
		t.Fatalf("returned record shares memory with log: name is %q", again[0].Services[0].Name)
	}
}
