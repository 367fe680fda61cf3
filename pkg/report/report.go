// Package report renders a championship as human readable text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mitchellh/go-wordwrap"
	"github.com/pkg/errors"

	"github.com/JustaPenguin/rally-championship"
)

const summaryWidth = 80

var heading = color.New(color.Bold)

func writeHeading(w io.Writer, title string) {
	_, _ = heading.Fprintf(w, "===== %s =====\n", title)
}

// Write renders the standings, leader, statistics, event results and car ratings of c.
func Write(w io.Writer, c *championship.Championship, cars ...*championship.Car) error {
	for _, section := range []func(io.Writer, *championship.Championship) error{
		Standings,
		Leader,
		Statistics,
		EventResults,
	} {
		if err := section(w, c); err != nil {
			return err
		}
	}

	if len(cars) > 0 {
		CarPerformance(w, cars...)
	}

	return nil
}

// Standings writes a table of every competitor in championship order.
func Standings(w io.Writer, c *championship.Championship) error {
	writeHeading(w, "CHAMPIONSHIP STANDINGS")

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Pos", "Competitor", "Country", "Points"})

	for i, competitor := range c.Standings() {
		t.AppendRow(table.Row{humanize.Ordinal(i + 1), competitor.Name, competitor.Country, competitor.Points()})
	}

	t.Render()
	fmt.Fprintln(w)

	return nil
}

// Leader writes the championship leader.
func Leader(w io.Writer, c *championship.Championship) error {
	leader, err := c.Leader()

	if err != nil {
		return err
	}

	writeHeading(w, "CHAMPIONSHIP LEADER")
	_, _ = color.New(color.FgGreen).Fprintf(w, "%s with %d points\n\n", leader.Name, leader.Points())

	return nil
}

// Statistics writes the championship's summary statistics.
func Statistics(w io.Writer, c *championship.Championship) error {
	competitors := c.Competitors()

	average, err := championship.AveragePoints(competitors)

	if err != nil {
		return err
	}

	country, err := championship.MostSuccessfulCountry(competitors)

	if err != nil {
		return err
	}

	writeHeading(w, "CHAMPIONSHIP STATISTICS")
	fmt.Fprintf(w, "Total competitors: %d\n", c.NumCompetitors())
	fmt.Fprintf(w, "Total events: %d\n", championship.TotalEventsHeld(c))
	fmt.Fprintf(w, "Average points per competitor: %.2f\n", average)
	fmt.Fprintf(w, "Most successful country: %s\n", country)
	fmt.Fprintf(w, "Total championship points: %d\n\n", c.TotalPoints())

	return nil
}

// EventResults writes each event with its finishing order and the points given in it.
func EventResults(w io.Writer, c *championship.Championship) error {
	writeHeading(w, "EVENT RESULTS")

	for _, event := range c.Events() {
		fmt.Fprintf(w, "Event: %s (%s)\n", event.Name, event.Location)

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Pos", "Competitor", "Points"})

		for _, competitor := range event.RankedCompetitors() {
			position, err := event.PositionFor(competitor)

			if err != nil {
				return err
			}

			points, err := event.PointsFor(competitor)

			if err != nil {
				return err
			}

			t.AppendRow(table.Row{position, competitor.Name, points})
		}

		t.Render()
		fmt.Fprintln(w)
	}

	return nil
}

// CarPerformance writes the performance rating of each car.
func CarPerformance(w io.Writer, cars ...*championship.Car) {
	writeHeading(w, "CAR PERFORMANCE RATINGS")

	for _, car := range cars {
		fmt.Fprintf(w, "%s: %.1f\n", car, car.PerformanceRating())
	}
}

// Summary describes where a competitor stands in the championship, who is ahead of them and how their
// country is doing. The competitor must be registered in c.
func Summary(c *championship.Championship, competitor *championship.Competitor) (string, error) {
	if competitor == nil {
		return "", errors.Wrap(championship.ErrInvalidArgument, "summary of nil competitor")
	}

	if _, err := c.CompetitorByID(competitor.ID); err != nil {
		return "", err
	}

	if championship.TotalEventsHeld(c) == 0 {
		return "This is the first event of the Championship!", nil
	}

	standings := c.Standings()
	pos := 0

	for i, standing := range standings {
		if standing.ID == competitor.ID {
			pos = i
			break
		}
	}

	var out []string

	out = append(out, fmt.Sprintf("You are currently %s with %d points.", humanize.Ordinal(pos+1), competitor.Points()))

	if pos >= 1 {
		ahead := standings[pos-1]
		out = append(out, fmt.Sprintf("The competitor ahead of you is %s with %d points.", ahead.Name, ahead.Points()))
	}

	for i, country := range championship.CountryStandings(c.Competitors()) {
		if country.Country == championship.NormaliseCountry(competitor.Country) {
			out = append(out, fmt.Sprintf("%s is %s in the country standings with %d points.", country.Country, humanize.Ordinal(i+1), country.Points))
			break
		}
	}

	return wordwrap.WrapString(strings.Join(out, " "), summaryWidth), nil
}
