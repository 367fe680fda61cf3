package championship

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// A Competitor takes part in a Championship, accumulating points across its events. Competitors are keyed
// by ID, which never changes, so a Competitor's points can change without affecting lookups.
type Competitor struct {
	ID      uuid.UUID
	Name    string
	Country string

	points int
	car    *Car
}

// NewCompetitor creates a Competitor with zero points, driving the given Car.
func NewCompetitor(name, country string, car *Car) *Competitor {
	return &Competitor{
		ID:      uuid.New(),
		Name:    name,
		Country: country,
		car:     car,
	}
}

// AddPoints adds n to the Competitor's total. Points are never taken away, so a negative n is rejected.
func (c *Competitor) AddPoints(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidArgument, "cannot add %d points to %s", n, c.Name)
	}

	c.points += n

	return nil
}

// Points is the Competitor's cumulative total.
func (c *Competitor) Points() int {
	return c.points
}

func (c *Competitor) Car() *Car {
	return c.car
}

func (c *Competitor) SetCar(car *Car) {
	c.car = car
}

func (c *Competitor) String() string {
	return fmt.Sprintf("%s (%s): %d points", c.Name, c.Country, c.points)
}
