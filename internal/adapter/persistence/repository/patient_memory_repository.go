package repository

import (
	"context"
	"sync"

	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase/interfaces"
)

// PatientMemoryRepository holds the live queue in process memory.
//
// The waiting room is memory-resident by contract: there is no persistence
// collaborator, and the queue dies with the process. Storage order is
// insertion order, which is what the wait-estimate recompute iterates in.
//
// All reads and writes hand out copies, so callers can never mutate the store
// through a returned value.
type PatientMemoryRepository struct {
	mu       sync.RWMutex
	patients []entities.Patient
}

var _ interfaces.IPatientRepository = (*PatientMemoryRepository)(nil)

func NewPatientMemoryRepository() *PatientMemoryRepository {
	return &PatientMemoryRepository{}
}

func (r *PatientMemoryRepository) Insert(_ context.Context, p entities.Patient) (entities.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients = append(r.patients, clonePatient(p))
	return p, nil
}

func (r *PatientMemoryRepository) GetByID(_ context.Context, id int) (entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patients {
		if p.ID == id {
			return clonePatient(p), nil
		}
	}
	return entities.Patient{}, nil
}

func (r *PatientMemoryRepository) List(_ context.Context) ([]entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, clonePatient(p))
	}
	return out, nil
}

func (r *PatientMemoryRepository) Update(_ context.Context, p entities.Patient) (entities.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.patients {
		if r.patients[i].ID == p.ID {
			r.patients[i] = clonePatient(p)
			return p, nil
		}
	}
	return entities.Patient{}, nil
}

func (r *PatientMemoryRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.patients {
		if r.patients[i].ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func clonePatient(p entities.Patient) entities.Patient {
	out := p
	if p.Services != nil {
		out.Services = make([]entities.Service, len(p.Services))
		copy(out.Services, p.Services)
	}
	if p.CompletionTime != nil {
		t := *p.CompletionTime
		out.CompletionTime = &t
	}
	if p.CompletionDate != nil {
		d := *p.CompletionDate
		out.CompletionDate = &d
	}
	return out
}
