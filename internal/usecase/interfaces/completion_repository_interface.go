package interfaces

import (
	"context"

	"salle_attente/internal/domain/entities"
)

// ICompletionRepository abstracts the append-only billing log.
//
// Records are facts: once a consultation completed, its record stays even if
// the patient is later deleted from the queue. There is no update or delete.
type ICompletionRepository interface {
	Append(ctx context.Context, r entities.CompletionRecord) (entities.CompletionRecord, error)
	List(ctx context.Context) ([]entities.CompletionRecord, error)
}
