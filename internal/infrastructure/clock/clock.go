package clock

import (
	"time"

	"salle_attente/internal/usecase/interfaces"
)

// WallClock is the production clock.
type WallClock struct{}

var _ interfaces.IClock = WallClock{}

func New() WallClock {
	return WallClock{}
}

func (WallClock) Now() time.Time {
	return time.Now()
}
