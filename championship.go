package championship

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// A Championship is a collection of EventResults for a group of Competitors. Each Competitor is awarded
// points for their position in an event, and the Championship derives standings from those points.
//
// A Championship's mutating methods and derived views are serialised by a single lock.
type Championship struct {
	ID      uuid.UUID
	Name    string
	Created time.Time

	competitors    []*Competitor
	events         []*EventResult
	numCompetitors int

	mutex sync.Mutex
}

// NewChampionship creates a Championship with a given name, creating a UUID for the championship as well.
func NewChampionship(name string) *Championship {
	return &Championship{
		ID:      uuid.New(),
		Name:    name,
		Created: time.Now(),
	}
}

// Register adds a competitor to the Championship. A competitor can only be registered once.
func (c *Championship) Register(competitor *Competitor) error {
	if competitor == nil {
		return errors.Wrap(ErrInvalidArgument, "cannot register nil competitor")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, existing := range c.competitors {
		if existing.ID == competitor.ID {
			return errors.Wrapf(ErrInvalidArgument, "competitor %s (%s) is already registered", competitor.Name, competitor.ID)
		}
	}

	c.competitors = append(c.competitors, competitor)
	c.numCompetitors++

	competitorsRegistered.Inc()

	logrus.Infof("Registered competitor: %s (%s) in %s", competitor.Name, competitor.Country, c.Name)

	return nil
}

// AddEventResult adds a result to the Championship.
func (c *Championship) AddEventResult(result *EventResult) error {
	if result == nil {
		return errors.Wrap(ErrInvalidArgument, "cannot add nil event result")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.events = append(c.events, result)

	eventResultsAdded.Inc()

	logrus.Infof("Added event result: %s (%s) with %d entries to %s", result.Name, result.Location, result.NumEntries(), c.Name)

	return nil
}

// RecordEntry records a competitor's outcome in the given event while holding the Championship's lock.
func (c *Championship) RecordEntry(result *EventResult, competitor *Competitor, position, points int) error {
	if result == nil {
		return errors.Wrap(ErrInvalidArgument, "cannot record entry in nil event result")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	return result.RecordEntry(competitor, position, points)
}

// Competitors returns the registered competitors in registration order.
func (c *Championship) Competitors() []*Competitor {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	out := make([]*Competitor, len(c.competitors))
	copy(out, c.competitors)

	return out
}

// Events returns the event results in the order they were added.
func (c *Championship) Events() []*EventResult {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	out := make([]*EventResult, len(c.events))
	copy(out, c.events)

	return out
}

// NumCompetitors is the running count of registrations.
func (c *Championship) NumCompetitors() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.numCompetitors
}

// CompetitorByID finds a registered Competitor by its ID.
func (c *Championship) CompetitorByID(id uuid.UUID) (*Competitor, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, competitor := range c.competitors {
		if competitor.ID == id {
			return competitor, nil
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "competitor %s", id)
}

// EventByID finds an EventResult by its ID.
func (c *Championship) EventByID(id uuid.UUID) (*EventResult, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, event := range c.events {
		if event.ID == id {
			return event, nil
		}
	}

	return nil, errors.Wrapf(ErrNotFound, "event %s", id)
}

// Standings returns all competitors sorted by descending points. Competitors on equal points stay in
// registration order.
func (c *Championship) Standings() []*Competitor {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	out := make([]*Competitor, len(c.competitors))
	copy(out, c.competitors)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points() > out[j].Points()
	})

	return out
}

// Leader is the competitor with the most points. On a tie for first, the earliest registered wins.
func (c *Championship) Leader() (*Competitor, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if len(c.competitors) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "%s has no competitors", c.Name)
	}

	leader := c.competitors[0]

	for _, competitor := range c.competitors[1:] {
		if competitor.Points() > leader.Points() {
			leader = competitor
		}
	}

	return leader, nil
}

// TotalPoints is the sum of every competitor's points.
func (c *Championship) TotalPoints() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	total := 0

	for _, competitor := range c.competitors {
		total += competitor.Points()
	}

	return total
}
