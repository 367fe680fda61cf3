package championship

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func registerCompetitors(t *testing.T, c *Championship, names ...string) []*Competitor {
	t.Helper()

	var out []*Competitor

	for _, name := range names {
		competitor := NewCompetitor(name, "Finland", nil)

		if err := c.Register(competitor); err != nil {
			t.Fatal(err)
		}

		out = append(out, competitor)
	}

	return out
}

func TestChampionship_Scenario(t *testing.T) {
	c := NewChampionship("WRC")
	competitors := registerCompetitors(t, c, "A", "B")
	a, b := competitors[0], competitors[1]

	r1 := NewEventResult("R1", "Jyväskylä")

	if err := c.RecordEntry(r1, a, 1, 25); err != nil {
		t.Error(err)
		return
	}

	if err := c.RecordEntry(r1, b, 2, 18); err != nil {
		t.Error(err)
		return
	}

	if err := c.AddEventResult(r1); err != nil {
		t.Error(err)
		return
	}

	standings := c.Standings()

	if len(standings) != 2 || standings[0] != a || standings[1] != b {
		t.Logf("expected [A B], got %v", competitorNames(standings))
		t.Fail()
	}

	if a.Points() != 25 || b.Points() != 18 {
		t.Logf("expected A=25, B=18, got A=%d, B=%d", a.Points(), b.Points())
		t.Fail()
	}

	leader, err := c.Leader()

	if err != nil {
		t.Error(err)
		return
	}

	if leader != a {
		t.Logf("expected leader A, got %s", leader.Name)
		t.Fail()
	}

	if c.TotalPoints() != 43 {
		t.Logf("expected 43 total points, got %d", c.TotalPoints())
		t.Fail()
	}

	if TotalEventsHeld(c) != 1 {
		t.Logf("expected 1 event, got %d", TotalEventsHeld(c))
		t.Fail()
	}
}

type standingsTest struct {
	names    []string
	points   []int
	expected []string
}

func TestChampionship_Standings(t *testing.T) {
	fixtures := []standingsTest{
		{
			names:    []string{"A", "B", "C"},
			points:   []int{10, 30, 20},
			expected: []string{"B", "C", "A"},
		},
		{
			// equal points keep registration order
			names:    []string{"A", "B", "C", "D"},
			points:   []int{18, 25, 18, 18},
			expected: []string{"B", "A", "C", "D"},
		},
		{
			names:    []string{"D", "C", "B", "A"},
			points:   []int{0, 0, 0, 0},
			expected: []string{"D", "C", "B", "A"},
		},
		{
			names:    []string{},
			points:   []int{},
			expected: nil,
		},
	}

	for _, fixture := range fixtures {
		c := NewChampionship("WRC")
		competitors := registerCompetitors(t, c, fixture.names...)

		for i, competitor := range competitors {
			if err := competitor.AddPoints(fixture.points[i]); err != nil {
				t.Error(err)
				return
			}
		}

		standings := c.Standings()

		if got := competitorNames(standings); !sameNames(got, fixture.expected) {
			t.Logf("expected %v, got %v", fixture.expected, got)
			t.Fail()
		}

		for i := 1; i < len(standings); i++ {
			if standings[i-1].Points() < standings[i].Points() {
				t.Logf("standings not in descending order: %v", competitorNames(standings))
				t.Fail()
			}
		}
	}
}

func TestChampionship_Leader(t *testing.T) {
	t.Run("No competitors", func(t *testing.T) {
		_, err := NewChampionship("WRC").Leader()

		if errors.Cause(err) != ErrEmptyInput {
			t.Logf("expected ErrEmptyInput, got %v", err)
			t.Fail()
		}
	})

	t.Run("Tie for first goes to earliest registered", func(t *testing.T) {
		c := NewChampionship("WRC")
		competitors := registerCompetitors(t, c, "A", "B", "C")

		for i, points := range []int{10, 25, 25} {
			if err := competitors[i].AddPoints(points); err != nil {
				t.Error(err)
				return
			}
		}

		leader, err := c.Leader()

		if err != nil {
			t.Error(err)
			return
		}

		if leader != competitors[1] {
			t.Logf("expected leader B, got %s", leader.Name)
			t.Fail()
		}
	})

	t.Run("Everyone on zero", func(t *testing.T) {
		c := NewChampionship("WRC")
		competitors := registerCompetitors(t, c, "A", "B")

		leader, err := c.Leader()

		if err != nil {
			t.Error(err)
			return
		}

		if leader != competitors[0] {
			t.Logf("expected leader A, got %s", leader.Name)
			t.Fail()
		}
	})
}

func TestChampionship_Register(t *testing.T) {
	c := NewChampionship("WRC")
	a := NewCompetitor("A", "France", nil)

	if err := c.Register(a); err != nil {
		t.Error(err)
		return
	}

	if err := c.Register(a); errors.Cause(err) != ErrInvalidArgument {
		t.Logf("expected ErrInvalidArgument registering twice, got %v", err)
		t.Fail()
	}

	if err := c.Register(nil); errors.Cause(err) != ErrInvalidArgument {
		t.Logf("expected ErrInvalidArgument registering nil, got %v", err)
		t.Fail()
	}

	if c.NumCompetitors() != 1 {
		t.Logf("expected 1 competitor, got %d", c.NumCompetitors())
		t.Fail()
	}

	found, err := c.CompetitorByID(a.ID)

	if err != nil {
		t.Error(err)
		return
	}

	if found != a {
		t.Fail()
	}

	if _, err := c.CompetitorByID(uuid.New()); errors.Cause(err) != ErrNotFound {
		t.Logf("expected ErrNotFound, got %v", err)
		t.Fail()
	}
}

func TestChampionship_AddEventResult(t *testing.T) {
	c := NewChampionship("WRC")

	if err := c.AddEventResult(nil); errors.Cause(err) != ErrInvalidArgument {
		t.Logf("expected ErrInvalidArgument, got %v", err)
		t.Fail()
	}

	finland := NewEventResult("Rally Finland", "Jyväskylä")
	monteCarlo := NewEventResult("Monte Carlo Rally", "Monaco")

	for _, result := range []*EventResult{finland, monteCarlo} {
		if err := c.AddEventResult(result); err != nil {
			t.Error(err)
			return
		}
	}

	events := c.Events()

	if len(events) != 2 || events[0] != finland || events[1] != monteCarlo {
		t.Log("events not returned in the order they were added")
		t.Fail()
	}

	found, err := c.EventByID(monteCarlo.ID)

	if err != nil {
		t.Error(err)
		return
	}

	if found != monteCarlo {
		t.Fail()
	}

	if _, err := c.EventByID(uuid.New()); errors.Cause(err) != ErrNotFound {
		t.Logf("expected ErrNotFound, got %v", err)
		t.Fail()
	}

	if err := c.RecordEntry(nil, NewCompetitor("A", "France", nil), 1, 25); errors.Cause(err) != ErrInvalidArgument {
		t.Logf("expected ErrInvalidArgument, got %v", err)
		t.Fail()
	}
}

func TestChampionship_Metrics(t *testing.T) {
	registered := testutil.ToFloat64(competitorsRegistered)
	added := testutil.ToFloat64(eventResultsAdded)
	recorded := testutil.ToFloat64(entriesRecorded)
	awarded := testutil.ToFloat64(pointsAwarded)

	c := NewChampionship("WRC")
	competitors := registerCompetitors(t, c, "A", "B")
	result := NewEventResult("Rally Finland", "Jyväskylä")

	if err := c.RecordEntry(result, competitors[0], 1, 25); err != nil {
		t.Error(err)
		return
	}

	if err := c.RecordEntry(result, competitors[1], 2, 18); err != nil {
		t.Error(err)
		return
	}

	if err := c.AddEventResult(result); err != nil {
		t.Error(err)
		return
	}

	if got := testutil.ToFloat64(competitorsRegistered) - registered; got != 2 {
		t.Logf("expected 2 registrations, got %v", got)
		t.Fail()
	}

	if got := testutil.ToFloat64(eventResultsAdded) - added; got != 1 {
		t.Logf("expected 1 event result, got %v", got)
		t.Fail()
	}

	if got := testutil.ToFloat64(entriesRecorded) - recorded; got != 2 {
		t.Logf("expected 2 entries, got %v", got)
		t.Fail()
	}

	if got := testutil.ToFloat64(pointsAwarded) - awarded; got != 43 {
		t.Logf("expected 43 points awarded, got %v", got)
		t.Fail()
	}
}

func TestChampionship_ConcurrentStandings(t *testing.T) {
	c := NewChampionship("WRC")
	competitors := registerCompetitors(t, c, "A", "B", "C")
	result := NewEventResult("Rally Finland", "Jyväskylä")

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		for i := 0; i < 1000; i++ {
			if err := c.RecordEntry(result, competitors[i%len(competitors)], 1, 1); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()

		for i := 0; i < 1000; i++ {
			if standings := c.Standings(); len(standings) != len(competitors) {
				t.Errorf("expected %d competitors in standings, got %d", len(competitors), len(standings))
				return
			}

			if _, err := c.Leader(); err != nil {
				t.Error(err)
				return
			}

			c.TotalPoints()
		}
	}()

	wg.Wait()

	if c.TotalPoints() != 1000 {
		t.Logf("expected 1000 total points, got %d", c.TotalPoints())
		t.Fail()
	}
}
