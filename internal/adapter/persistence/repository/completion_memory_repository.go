package repository

import (
	"context"
	"sync"

	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase/interfaces"
)

// CompletionMemoryRepository is the in-process append-only billing log.
//
// Append order is discovery order; the ledger rebuild relies on it for the
// "patients in insertion order" shape of a day's entry.
type CompletionMemoryRepository struct {
	mu      sync.RWMutex
	records []entities.CompletionRecord
}

var _ interfaces.ICompletionRepository = (*CompletionMemoryRepository)(nil)

func NewCompletionMemoryRepository() *CompletionMemoryRepository {
	return &CompletionMemoryRepository{}
}

func (r *CompletionMemoryRepository) Append(_ context.Context, rec entities.CompletionRecord) (entities.CompletionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, cloneRecord(rec))
	return rec, nil
}

func (r *CompletionMemoryRepository) List(_ context.Context) ([]entities.CompletionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.CompletionRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

func cloneRecord(rec entities.CompletionRecord) entities.CompletionRecord {
	out := rec
	if rec.Services != nil {
		out.Services = make([]entities.Service, len(rec.Services))
		copy(out.Services, rec.Services)
	}
	return out
}
