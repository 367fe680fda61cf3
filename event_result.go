package championship

import (
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// An Entry is one Competitor's outcome in an EventResult.
type Entry struct {
	Competitor *Competitor
	Position   int
	Points     int
}

// An EventResult records where each Competitor finished in a single event, and the points they were given
// for it. It is not safe for concurrent use; go through Championship.RecordEntry when sharing one.
type EventResult struct {
	ID       uuid.UUID
	Name     string
	Location string

	// entries are kept in the order competitors were first recorded.
	entries []*Entry
	byID    map[uuid.UUID]*Entry
}

// NewEventResult creates an empty EventResult for the event with the given name.
func NewEventResult(name, location string) *EventResult {
	return &EventResult{
		ID:       uuid.New(),
		Name:     name,
		Location: location,
		byID:     make(map[uuid.UUID]*Entry),
	}
}

// RecordEntry adds points to the competitor's cumulative total and stores their position and points for this
// event. Recording a competitor again overwrites the stored entry but adds the new points on top of the
// old ones.
func (e *EventResult) RecordEntry(competitor *Competitor, position, points int) error {
	if competitor == nil {
		return errors.Wrapf(ErrInvalidArgument, "%s: nil competitor", e.Name)
	}

	if position < 1 {
		return errors.Wrapf(ErrInvalidArgument, "%s: %s has non-positive position %d", e.Name, competitor.Name, position)
	}

	if err := competitor.AddPoints(points); err != nil {
		return errors.Wrap(err, e.Name)
	}

	if entry, ok := e.byID[competitor.ID]; ok {
		logrus.Debugf("%s: overwriting entry for %s (P%d, %d pts -> P%d, %d pts)", e.Name, competitor.Name, entry.Position, entry.Points, position, points)

		entry.Position = position
		entry.Points = points
	} else {
		entry := &Entry{
			Competitor: competitor,
			Position:   position,
			Points:     points,
		}

		e.entries = append(e.entries, entry)
		e.byID[competitor.ID] = entry
	}

	entriesRecorded.Inc()
	pointsAwarded.Add(float64(points))

	logrus.Debugf("%s: recorded %s in P%d with %d points", e.Name, competitor.Name, position, points)

	return nil
}

// RecordPlacing records a competitor's position with the points the PointsSystem awards for it.
func (e *EventResult) RecordPlacing(competitor *Competitor, position int, points PointsSystem) error {
	return e.RecordEntry(competitor, position, points.PointsForPosition(position))
}

func (e *EventResult) entryFor(competitor *Competitor) (*Entry, error) {
	if competitor == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: nil competitor", e.Name)
	}

	entry, ok := e.byID[competitor.ID]

	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%s: no entry for %s", e.Name, competitor.Name)
	}

	return entry, nil
}

// PointsFor returns the points the competitor was given in this event.
func (e *EventResult) PointsFor(competitor *Competitor) (int, error) {
	entry, err := e.entryFor(competitor)

	if err != nil {
		return 0, err
	}

	return entry.Points, nil
}

// PositionFor returns the competitor's finishing position in this event.
func (e *EventResult) PositionFor(competitor *Competitor) (int, error) {
	entry, err := e.entryFor(competitor)

	if err != nil {
		return 0, err
	}

	return entry.Position, nil
}

// Entries returns a copy of the recorded entries, sorted by ascending position. Equal positions keep the
// order in which the competitors were first recorded.
func (e *EventResult) Entries() []Entry {
	out := make([]Entry, len(e.entries))

	for i, entry := range e.entries {
		out[i] = *entry
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})

	return out
}

// RankedCompetitors returns the competitors in finishing order.
func (e *EventResult) RankedCompetitors() []*Competitor {
	entries := e.Entries()
	out := make([]*Competitor, len(entries))

	for i, entry := range entries {
		out[i] = entry.Competitor
	}

	return out
}

// NumEntries is the number of distinct competitors recorded.
func (e *EventResult) NumEntries() int {
	return len(e.entries)
}
