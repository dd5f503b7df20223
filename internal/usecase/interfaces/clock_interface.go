package interfaces

import "time"

// IClock abstracts the wall clock so slot allocation and completion stamping
// are deterministic under test.
type IClock interface {
	Now() time.Time
}
