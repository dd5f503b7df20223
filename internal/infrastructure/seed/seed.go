package seed

import (
	"context"

	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// DemoPatients is the familiar morning snapshot used for demos and manual
// testing: two patients waiting, one already in consultation.
func DemoPatients() []entities.Patient {
	return []entities.Patient{
		{
			ID: 1, Name: "Martin Dupont", AppointmentTime: "09:30",
			Status: entities.PatientStatusWaiting, EstimatedWaitMinutes: 15,
			Services: []entities.Service{},
		},
		{
			ID: 2, Name: "Sophie Bernard", AppointmentTime: "10:00",
			Status: entities.PatientStatusWaiting, EstimatedWaitMinutes: 30,
			Services: []entities.Service{},
		},
		{
			ID: 3, Name: "Thomas Petit", AppointmentTime: "10:30",
			Status: entities.PatientStatusInConsultation, EstimatedWaitMinutes: 0,
			Services: []entities.Service{},
		},
	}
}

// Apply inserts the demo patients into an empty queue. A non-empty queue is
// left alone.
func Apply(ctx context.Context, patients interfaces.IPatientRepository, log zerolog.Logger) error {
	existing, err := patients.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info().Int("patients", len(existing)).Msg("queue not empty, skipping demo seed")
		return nil
	}
	for _, p := range DemoPatients() {
		if _, err := patients.Insert(ctx, p); err != nil {
			return err
		}
	}
	log.Info().Int("patients", len(DemoPatients())).Msg("seeded demo queue")
	return nil
}
