package championship

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Configuration struct {
	Log        LogConfig        `yaml:"log"`
	Monitoring MonitoringConfig `yaml:"monitoring"`

	// Points awarded by finishing position, winner first. Empty means DefaultPointsSystem.
	Points []int `yaml:"points"`

	Surfaces []SurfaceConfig `yaml:"surfaces"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type MonitoringConfig struct {
	Enabled bool `yaml:"enabled"`
}

// SurfaceConfig describes a surface variant beyond the built-in ones. Either Factor or Script (the path
// of a Lua script defining surfaceFactor) must be set.
type SurfaceConfig struct {
	Name   string  `yaml:"name"`
	Factor float64 `yaml:"factor"`
	Script string  `yaml:"script"`
}

// DefaultConfiguration is used when no config file is present.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Log: LogConfig{
			Level: "info",
		},
	}
}

func ReadConfig(location string) (conf *Configuration, err error) {
	f, err := os.Open(location)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	conf = DefaultConfiguration()

	if err := yaml.NewDecoder(f).Decode(conf); err != nil {
		return nil, errors.Wrapf(err, "could not decode config file %s", location)
	}

	for _, points := range conf.Points {
		if points < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "config file %s awards negative points (%d)", location, points)
		}
	}

	return conf, nil
}

// PointsSystem is the configured points table, or DefaultPointsSystem.
func (c *Configuration) PointsSystem() PointsSystem {
	if len(c.Points) == 0 {
		return DefaultPointsSystem
	}

	places := make([]int, len(c.Points))
	copy(places, c.Points)

	return PointsSystem{Places: places}
}

// BuildSurfaces returns the built-in surfaces plus every configured one, keyed by name. A configured
// surface may replace a built-in one of the same name.
func (c *Configuration) BuildSurfaces() (map[string]Surface, error) {
	surfaces := BuiltinSurfaces()

	for _, sc := range c.Surfaces {
		if sc.Name == "" {
			return nil, errors.Wrap(ErrInvalidArgument, "configured surface has no name")
		}

		var surface Surface
		var err error

		switch {
		case sc.Script != "":
			surface, err = LoadLuaSurface(sc.Name, sc.Script)
		default:
			surface, err = NewSurface(sc.Name, sc.Factor)
		}

		if err != nil {
			return nil, err
		}

		surfaces[sc.Name] = surface
	}

	return surfaces, nil
}
