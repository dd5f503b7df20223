package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"salle_attente/internal/domain/catalog"
	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrEmptyPatientName         = errors.New("empty patient name")
	ErrPatientNotFound          = errors.New("patient not found")
	ErrPatientNotWaiting        = errors.New("patient is not waiting")
	ErrPatientNotInConsultation = errors.New("patient is not in consultation")
	ErrEmptyServiceSelection    = errors.New("empty service selection")
)

const (
	slotStep   = 15 * time.Minute
	slotBuffer = 15 * time.Minute

	// Placeholder estimate assigned at admission; the recompute that runs in
	// the same critical section overwrites it immediately.
	initialWaitMinutes = 20

	waitPerPatientMinutes = 15

	timeLayout = "15:04"
	dateLayout = "2006-01-02"
)

// ClockView is the front-desk header state: current wall clock plus the next
// free appointment slot.
type ClockView struct {
	CurrentTime   string
	CurrentDate   string
	NextAvailable string
}

// IQueueUseCase exposes the waiting-room queue operations.
//
// Every mutating call commits its change and the derived-state recompute
// (wait estimates) in a single critical section, so readers never observe a
// half-applied queue.
type IQueueUseCase interface {
	Add(ctx context.Context, name string) (entities.Patient, error)
	Start(ctx context.Context, id int) (entities.Patient, error)
	Complete(ctx context.Context, id int, serviceIDs []int) (entities.Patient, error)
	Delete(ctx context.Context, id int) error
	QueueView(ctx context.Context) ([]entities.Patient, error)
	Patients(ctx context.Context) ([]entities.Patient, error)
	ClockView(ctx context.Context) (ClockView, error)
}

type QueueUseCase struct {
	mu          sync.Mutex
	patients    interfaces.IPatientRepository
	completions interfaces.ICompletionRepository
	clock       interfaces.IClock
	catalog     *catalog.Catalog
	log         zerolog.Logger
}

var _ IQueueUseCase = (*QueueUseCase)(nil)

func NewQueueUseCase(
	patients interfaces.IPatientRepository,
	completions interfaces.ICompletionRepository,
	clock interfaces.IClock,
	cat *catalog.Catalog,
	log zerolog.Logger,
) *QueueUseCase {
	return &QueueUseCase{
		patients:    patients,
		completions: completions,
		clock:       clock,
		catalog:     cat,
		log:         log,
	}
}

// Add admits a new patient: next id, next free appointment slot, waiting
// status. Slot computation and insertion happen under the same lock, so two
// rapid admissions cannot be handed the same slot.
func (u *QueueUseCase) Add(ctx context.Context, name string) (entities.Patient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Patient{}, ErrEmptyPatientName
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := u.patients.List(ctx)
	if err != nil {
		return entities.Patient{}, err
	}

	id := 1
	taken := make(map[string]bool, len(existing))
	for _, p := range existing {
		if p.ID >= id {
			id = p.ID + 1
		}
		taken[p.AppointmentTime] = true
	}

	p := entities.Patient{
		ID:                   id,
		Name:                 name,
		AppointmentTime:      nextFreeSlot(u.clock.Now(), taken),
		Status:               entities.PatientStatusWaiting,
		EstimatedWaitMinutes: initialWaitMinutes,
		Services:             []entities.Service{},
	}

	created, err := u.patients.Insert(ctx, p)
	if err != nil {
		return entities.Patient{}, err
	}
	if err := u.recomputeWaitEstimates(ctx); err != nil {
		return entities.Patient{}, err
	}
	return u.patients.GetByID(ctx, created.ID)
}

// Start moves a waiting patient into consultation.
func (u *QueueUseCase) Start(ctx context.Context, id int) (entities.Patient, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	p, err := u.patients.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}
	if p.ID == 0 {
		return entities.Patient{}, ErrPatientNotFound
	}
	if p.Status != entities.PatientStatusWaiting {
		return entities.Patient{}, ErrPatientNotWaiting
	}

	p.Status = entities.PatientStatusInConsultation
	p.EstimatedWaitMinutes = 0
	updated, err := u.patients.Update(ctx, p)
	if err != nil {
		return entities.Patient{}, err
	}
	if err := u.recomputeWaitEstimates(ctx); err != nil {
		return entities.Patient{}, err
	}
	return updated, nil
}

// Complete closes a consultation: resolves the selected services against the
// catalog (unknown ids dropped, catalog order), stamps completion time/date,
// and appends the billing fact to the completion log.
func (u *QueueUseCase) Complete(ctx context.Context, id int, serviceIDs []int) (entities.Patient, error) {
	services := u.catalog.Resolve(serviceIDs)
	if len(services) == 0 {
		return entities.Patient{}, ErrEmptyServiceSelection
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	p, err := u.patients.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}
	if p.ID == 0 {
		return entities.Patient{}, ErrPatientNotFound
	}
	if p.Status != entities.PatientStatusInConsultation {
		return entities.Patient{}, ErrPatientNotInConsultation
	}

	now := u.clock.Now()
	completionTime := now.Format(timeLayout)
	completionDate := now.Format(dateLayout)

	p.Status = entities.PatientStatusCompleted
	p.EstimatedWaitMinutes = 0
	p.Services = services
	p.CompletionTime = &completionTime
	p.CompletionDate = &completionDate

	updated, err := u.patients.Update(ctx, p)
	if err != nil {
		return entities.Patient{}, err
	}

	if _, err := u.completions.Append(ctx, entities.CompletionRecord{
		PatientID:   p.ID,
		PatientName: p.Name,
		Date:        completionDate,
		Time:        completionTime,
		Services:    services,
	}); err != nil {
		return entities.Patient{}, err
	}

	if err := u.recomputeWaitEstimates(ctx); err != nil {
		return entities.Patient{}, err
	}
	return updated, nil
}

// Delete removes a patient from the queue outright. The completion log is a
// separate store and keeps any billing facts already written for the patient.
func (u *QueueUseCase) Delete(ctx context.Context, id int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	removed, err := u.patients.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrPatientNotFound
	}
	return u.recomputeWaitEstimates(ctx)
}

// QueueView returns the non-completed patients in storage order.
func (u *QueueUseCase) QueueView(ctx context.Context) ([]entities.Patient, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	all, err := u.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	view := make([]entities.Patient, 0, len(all))
	for _, p := range all {
		if p.Status != entities.PatientStatusCompleted {
			view = append(view, p)
		}
	}
	return view, nil
}

// Patients returns the full patient list, completed ones included.
func (u *QueueUseCase) Patients(ctx context.Context) ([]entities.Patient, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.patients.List(ctx)
}

// ClockView derives the header state under the queue lock, so the next-slot
// value never reflects a half-applied mutation.
func (u *QueueUseCase) ClockView(ctx context.Context) (ClockView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.clockViewLocked(ctx)
}

func (u *QueueUseCase) clockViewLocked(ctx context.Context) (ClockView, error) {
	existing, err := u.patients.List(ctx)
	if err != nil {
		return ClockView{}, err
	}
	taken := make(map[string]bool, len(existing))
	for _, p := range existing {
		taken[p.AppointmentTime] = true
	}
	now := u.clock.Now()
	return ClockView{
		CurrentTime:   now.Format(timeLayout),
		CurrentDate:   now.Format(dateLayout),
		NextAvailable: nextFreeSlot(now, taken),
	}, nil
}

// RunClockRefresh re-derives the clock view at a fixed interval until the
// context is cancelled. It takes the same lock as the mutating operations, so
// the periodic refresh never races an in-flight admission.
func (u *QueueUseCase) RunClockRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			view, err := u.ClockView(ctx)
			if err != nil {
				u.log.Warn().Err(err).Msg("clock refresh failed")
				continue
			}
			u.log.Debug().
				Str("time", view.CurrentTime).
				Str("date", view.CurrentDate).
				Str("next_slot", view.NextAvailable).
				Msg("clock refreshed")
		}
	}
}

// recomputeWaitEstimates reassigns wait estimates after any structural change:
// the k-th waiting patient in storage order (0-indexed) gets 15*(k+1) minutes.
// Patients in other statuses are left untouched. Callers hold u.mu.
func (u *QueueUseCase) recomputeWaitEstimates(ctx context.Context) error {
	all, err := u.patients.List(ctx)
	if err != nil {
		return err
	}
	waiting := 0
	for _, p := range all {
		if p.Status != entities.PatientStatusWaiting {
			continue
		}
		waiting++
		estimate := waitPerPatientMinutes * waiting
		if p.EstimatedWaitMinutes == estimate {
			continue
		}
		p.EstimatedWaitMinutes = estimate
		if _, err := u.patients.Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// nextFreeSlot rounds now up to the next 15-minute boundary, adds a 15-minute
// buffer, then advances in 15-minute steps while the slot collides with an
// existing appointment time. Slots do not wrap across midnight: a late-day
// overflow lands on the next day's early slots with the same "HH:MM" label.
func nextFreeSlot(now time.Time, taken map[string]bool) string {
	slot := now.Truncate(time.Minute)
	if rem := slot.Minute() % 15; rem > 0 {
		slot = slot.Add(time.Duration(15-rem) * time.Minute)
	}
	slot = slot.Add(slotBuffer)
	for taken[slot.Format(timeLayout)] {
		slot = slot.Add(slotStep)
	}
	return slot.Format(timeLayout)
}
