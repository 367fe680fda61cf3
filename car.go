package championship

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CarSetup holds the surface specific tuning of a Car. It is descriptive only and does not feed into the
// performance rating.
type CarSetup struct {
	// Downforce matters on asphalt.
	Downforce float64
	// SuspensionTravel matters on gravel, in millimetres.
	SuspensionTravel float64
}

// A Car is driven by a Competitor. Cars are immutable once created; a Competitor swaps Cars rather than
// modifying one.
type Car struct {
	ID           uuid.UUID
	Manufacturer string
	Model        string
	Power        int

	surface Surface
	setup   CarSetup
}

// NewCar creates a Car tuned for the given Surface. Power must be positive.
func NewCar(manufacturer, model string, power int, surface Surface) (*Car, error) {
	if power <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "car %s %s has non-positive power %d", manufacturer, model, power)
	}

	if surface == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "car %s %s has no surface", manufacturer, model)
	}

	if !validFactor(surface.Factor()) {
		return nil, errors.Wrapf(ErrInvalidArgument, "surface %q has invalid factor %v", surface.Name(), surface.Factor())
	}

	return &Car{
		ID:           uuid.New(),
		Manufacturer: manufacturer,
		Model:        model,
		Power:        power,
		surface:      surface,
	}, nil
}

// WithSetup returns a copy of the Car carrying the given setup.
func (c *Car) WithSetup(setup CarSetup) *Car {
	out := *c
	out.setup = setup

	return &out
}

func (c *Car) Surface() Surface {
	return c.surface
}

func (c *Car) Setup() CarSetup {
	return c.setup
}

// PerformanceRating is the Car's power scaled by its Surface factor, rounded half-up to one decimal place.
func (c *Car) PerformanceRating() float64 {
	return roundHalfUp(float64(c.Power)*c.surface.Factor(), 1)
}

func (c *Car) String() string {
	return fmt.Sprintf("%s %s (%s)", c.Manufacturer, c.Model, c.surface.Name())
}
