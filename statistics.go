package championship

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// AveragePoints is the mean of the competitors' points.
func AveragePoints(competitors []*Competitor) (float64, error) {
	if len(competitors) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "average points of zero competitors")
	}

	total := 0

	for _, competitor := range competitors {
		total += competitor.Points()
	}

	return float64(total) / float64(len(competitors)), nil
}

// CountryStanding is the current number of points a country's competitors have between them.
type CountryStanding struct {
	Country string
	Points  int
}

// NormaliseCountry returns the form of a country name used for grouping: trimmed and NFC normalised, so
// that names typed with combining accents match precomposed ones.
func NormaliseCountry(country string) string {
	return norm.NFC.String(strings.TrimSpace(country))
}

// CountryStandings groups the competitors' points by country, sorted by descending points. Countries on
// equal points are ordered by their first appearance in competitors.
func CountryStandings(competitors []*Competitor) []*CountryStanding {
	var out []*CountryStanding

	byCountry := make(map[string]*CountryStanding)

	for _, competitor := range competitors {
		key := NormaliseCountry(competitor.Country)

		standing, ok := byCountry[key]

		if !ok {
			standing = &CountryStanding{Country: key}
			byCountry[key] = standing
			out = append(out, standing)
		}

		standing.Points += competitor.Points()
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})

	return out
}

// MostSuccessfulCountry is the country whose competitors have the most points between them. If countries
// tie, the one which appears first in competitors wins.
func MostSuccessfulCountry(competitors []*Competitor) (string, error) {
	standings := CountryStandings(competitors)

	if len(standings) == 0 {
		return "", errors.Wrap(ErrEmptyInput, "most successful country of zero competitors")
	}

	return standings[0].Country, nil
}

// TotalEventsHeld is the number of event results recorded in the championship.
func TotalEventsHeld(c *Championship) int {
	return len(c.Events())
}
