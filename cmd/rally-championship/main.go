// Command rally-championship runs a two event rally season and prints its report.
//
// Configuration is read from config.yml in the working directory. Copy config.example.yml to config.yml
// to change the log level, points table or surfaces; without it the defaults are used.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/JustaPenguin/rally-championship"
	"github.com/JustaPenguin/rally-championship/pkg/report"
)

const configFile = "config.yml"

type placing struct {
	competitor *championship.Competitor
	position   int
}

func main() {
	config, err := championship.ReadConfig(configFile)

	if os.IsNotExist(err) {
		config = championship.DefaultConfiguration()
	} else if err != nil {
		logrus.Fatalf("could not open config file, err: %s", err)
	}

	championship.InitLogging(config.Log.Level, os.Stderr)

	if config.Monitoring.Enabled {
		championship.InitMonitoring()
	}

	surfaces, err := config.BuildSurfaces()

	if err != nil {
		logrus.WithError(err).Fatal("could not build surfaces")
	}

	points := config.PointsSystem()

	asphaltCar, err := championship.NewCar("Toyota", "GR Yaris", 493, surfaces["asphalt"])

	if err != nil {
		logrus.WithError(err).Fatal("could not build asphalt car")
	}

	gravelCar, err := championship.NewCar("Porsche", "911 Dakar", 473, surfaces["gravel"])

	if err != nil {
		logrus.WithError(err).Fatal("could not build gravel car")
	}

	asphaltCar = asphaltCar.WithSetup(championship.CarSetup{Downforce: 150})
	gravelCar = gravelCar.WithSetup(championship.CarSetup{SuspensionTravel: 191})

	ogier := championship.NewCompetitor("Sébastien Ogier", "France", asphaltCar)
	rovanpera := championship.NewCompetitor("Kalle Rovanperä", "Finland", gravelCar)
	tanak := championship.NewCompetitor("Ott Tänak", "Estonia", gravelCar)
	neuville := championship.NewCompetitor("Thierry Neuville", "Belgium", asphaltCar)

	wrc := championship.NewChampionship("World Rally Championship")

	for _, competitor := range []*championship.Competitor{ogier, rovanpera, tanak, neuville} {
		if err := wrc.Register(competitor); err != nil {
			logrus.WithError(err).Fatal("could not register competitor")
		}
	}

	events := []struct {
		name, location string
		placings       []placing
	}{
		{
			name:     "Rally Finland",
			location: "Jyväskylä",
			placings: []placing{
				{ogier, 1},
				{rovanpera, 3},
				{tanak, 2},
				{neuville, 4},
			},
		},
		{
			name:     "Monte Carlo Rally",
			location: "Monaco",
			placings: []placing{
				{ogier, 3},
				{rovanpera, 1},
				{tanak, 4},
				{neuville, 2},
			},
		},
	}

	for _, e := range events {
		result := championship.NewEventResult(e.name, e.location)

		for _, p := range e.placings {
			if err := wrc.RecordEntry(result, p.competitor, p.position, points.PointsForPosition(p.position)); err != nil {
				logrus.WithError(err).Fatalf("could not record result for %s", e.name)
			}
		}

		if err := wrc.AddEventResult(result); err != nil {
			logrus.WithError(err).Fatalf("could not add result for %s", e.name)
		}
	}

	out := color.Output

	if err := report.Write(out, wrc, gravelCar, asphaltCar); err != nil {
		logrus.WithError(err).Fatal("could not write report")
	}

	for _, competitor := range wrc.Standings() {
		summary, err := report.Summary(wrc, competitor)

		if err != nil {
			logrus.WithError(err).Errorf("could not summarise %s", competitor.Name)
			continue
		}

		fmt.Fprintf(out, "\n%s\n%s\n", competitor.Name, summary)
	}

	if config.Monitoring.Enabled {
		if err := championship.WriteMetrics(os.Stderr, prometheus.DefaultGatherer); err != nil {
			logrus.WithError(err).Error("could not write metrics")
		}
	}
}
