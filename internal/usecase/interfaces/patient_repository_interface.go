package interfaces

import (
	"context"

	"salle_attente/internal/domain/entities"
)

// IPatientRepository abstracts the live queue store.
//
// The queue engine must be able to:
//   - insert a new patient at the end of the queue
//   - read a single patient or the whole queue in storage order
//   - update a patient in place (status transitions, wait estimates)
//   - remove a patient outright
//
// Lookups return a zero-value Patient (ID == 0) with a nil error when the id
// does not resolve; Delete reports whether anything was removed.
type IPatientRepository interface {
	Insert(ctx context.Context, p entities.Patient) (entities.Patient, error)
	GetByID(ctx context.Context, id int) (entities.Patient, error)
	List(ctx context.Context) ([]entities.Patient, error)
	Update(ctx context.Context, p entities.Patient) (entities.Patient, error)
	Delete(ctx context.Context, id int) (bool, error)
}
