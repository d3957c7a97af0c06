package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"

	"github.com/voidshard/poissondisk"
)

// Settings for a single run, merged from (lowest to highest priority)
// config file, POISSONDISK_* env vars & flags.
// Vectors are given as comma separated values eg. "10,20,5"
type Settings struct {
	Seed        int64   `mapstructure:"seed"`
	Retries     int     `mapstructure:"retries"`
	Amount      int     `mapstructure:"amount"`
	MinDistance float64 `mapstructure:"min-distance"`

	Shape  string  `mapstructure:"shape"`
	Origin string  `mapstructure:"origin"`
	Size   string  `mapstructure:"size"`
	Center string  `mapstructure:"center"`
	Radius float64 `mapstructure:"radius"`
	Start  string  `mapstructure:"start"`

	JSON  string `mapstructure:"json"`
	PNG   string `mapstructure:"png"`
	Cells bool   `mapstructure:"cells"`

	LogLevel string `mapstructure:"log-level"`
}

// addFlags registers every Settings field as a persistent flag on `cmd`
func addFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "config file (yaml, toml or json)")
	f.Int64("seed", 0, "random seed, 0 picks one from the clock")
	f.Int("retries", poissondisk.DefaultMaxRetries, "candidates tried around a point before giving up on it")
	f.Int("amount", 100, "number of points to place")
	f.Float64("min-distance", 1, "min distance between any two points")
	f.String("shape", "", "region shape: rect|circle|polygon (2d) cube|sphere (3d)")
	f.String("origin", "", "corner of a rect / cube region")
	f.String("size", "", "size of a rect / cube region")
	f.String("center", "", "center of a circle / sphere region")
	f.Float64("radius", 0, "radius of a circle / sphere region")
	f.String("vertices", "", "polygon vertices as x,y;x,y;x,y")
	f.String("start", "", "start position (first point), defaults to the origin / center")
	f.String("json", "", "write points as json to this path")
	f.String("png", "", "render points as png to this path")
	f.Bool("cells", false, "draw voronoi cells in the png")
	f.String("log-level", "info", "log level")
}

// loadSettings reads Settings for `cmd` via viper
func loadSettings(cmd *cobra.Command) (*Settings, []string, error) {
	v := viper.New()
	v.SetEnvPrefix("POISSONDISK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	cfgFile := v.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		err = v.ReadInConfig()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "reading config %s", cfgFile)
		}
	}

	s := &Settings{}
	err = v.Unmarshal(s)
	if err != nil {
		return nil, nil, err
	}

	return s, splitVertices(v.GetString("vertices")), nil
}

// splitVertices splits "x,y;x,y" into ["x,y", "x,y"]
func splitVertices(in string) []string {
	out := []string{}
	for _, v := range strings.Split(in, ";") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseVector parses "a,b,c" into exactly `n` floats.
// An empty string is all zeros.
func parseVector(in string, n int) ([]float64, error) {
	out := make([]float64, n)
	in = strings.TrimSpace(in)
	if in == "" {
		return out, nil
	}

	parts := strings.Split(in, ",")
	if len(parts) != n {
		return nil, errors.Errorf("expected %d values, got %q", n, in)
	}
	for i, p := range parts {
		f, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "value %d of %q", i, in)
		}
		out[i] = f
	}
	return out, nil
}

func parseCoord2D(in string) (model2d.Coord, error) {
	v, err := parseVector(in, 2)
	if err != nil {
		return model2d.Coord{}, err
	}
	return model2d.Coord{X: v[0], Y: v[1]}, nil
}

func parseCoord3D(in string) (model3d.Coord3D, error) {
	v, err := parseVector(in, 3)
	if err != nil {
		return model3d.Coord3D{}, err
	}
	return model3d.XYZ(v[0], v[1], v[2]), nil
}

// region2D builds the configured 2D region & a default start position for it
func (s *Settings) region2D(vertices []string) (poissondisk.Region2D, model2d.Coord, error) {
	switch s.Shape {
	case "", "rect":
		origin, err := parseCoord2D(s.Origin)
		if err != nil {
			return nil, origin, errors.Wrap(err, "origin")
		}
		size, err := parseCoord2D(s.Size)
		if err != nil {
			return nil, origin, errors.Wrap(err, "size")
		}
		r, err := poissondisk.NewRectangle(origin, size)
		return r, origin, err
	case "circle":
		center, err := parseCoord2D(s.Center)
		if err != nil {
			return nil, center, errors.Wrap(err, "center")
		}
		r, err := poissondisk.NewCircle(center, s.Radius)
		return r, center, err
	case "polygon":
		coords := []model2d.Coord{}
		for _, vtx := range vertices {
			c, err := parseCoord2D(vtx)
			if err != nil {
				return nil, model2d.Coord{}, errors.Wrap(err, "vertices")
			}
			coords = append(coords, c)
		}
		r, err := poissondisk.NewPolygon(coords...)
		if err != nil {
			return nil, model2d.Coord{}, err
		}
		// the mean of the vertices is a guess, a concave shape will need --start
		mean := model2d.Coord{}
		for _, c := range coords {
			mean = mean.Add(c)
		}
		return r, mean.Scale(1 / float64(len(coords))), nil
	}
	return nil, model2d.Coord{}, errors.Errorf("unknown 2d shape %q", s.Shape)
}

// region3D builds the configured 3D region & a default start position for it
func (s *Settings) region3D() (poissondisk.Region3D, model3d.Coord3D, error) {
	switch s.Shape {
	case "", "cube":
		origin, err := parseCoord3D(s.Origin)
		if err != nil {
			return nil, origin, errors.Wrap(err, "origin")
		}
		size, err := parseCoord3D(s.Size)
		if err != nil {
			return nil, origin, errors.Wrap(err, "size")
		}
		r, err := poissondisk.NewCube(origin, size)
		return r, origin, err
	case "sphere":
		center, err := parseCoord3D(s.Center)
		if err != nil {
			return nil, center, errors.Wrap(err, "center")
		}
		r, err := poissondisk.NewSphere(center, s.Radius)
		return r, center, err
	}
	return nil, model3d.Coord3D{}, errors.Errorf("unknown 3d shape %q", s.Shape)
}
