package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/voidshard/poissondisk"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		logrus.WithError(err).Error("poissondisk failed")
		os.Exit(1)
	}
}

// newRootCmd returns the poissondisk command with 2d & 3d subcommands
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "poissondisk",
		Short:         "Scatter evenly spaced random points in 2D or 3D regions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addFlags(root)

	root.AddCommand(&cobra.Command{
		Use:   "2d",
		Short: "Sample points in a rect, circle or polygon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, vertices, log, err := setup(cmd)
			if err != nil {
				return err
			}
			return run2D(s, vertices, log)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "3d",
		Short: "Sample points in a cube or sphere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, log, err := setup(cmd)
			if err != nil {
				return err
			}
			return run3D(s, log)
		},
	})

	return root
}

// setup loads settings & builds a logger at the configured level
func setup(cmd *cobra.Command) (*Settings, []string, *logrus.Logger, error) {
	s, vertices, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	lvl, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logrus.New()
	log.SetLevel(lvl)

	return s, vertices, log, nil
}

func run2D(s *Settings, vertices []string, log *logrus.Logger) error {
	region, start, err := s.region2D(vertices)
	if err != nil {
		return err
	}
	if s.Start != "" {
		start, err = parseCoord2D(s.Start)
		if err != nil {
			return errors.Wrap(err, "start")
		}
	}

	cfg := &poissondisk.Config{Seed: s.Seed, MaxRetries: s.Retries}
	sampler, err := poissondisk.NewSampler2DFromConfig(cfg)
	if err != nil {
		return err
	}

	fields := logrus.Fields{
		"amount":       s.Amount,
		"min_distance": s.MinDistance,
		"region":       region.String(),
		"seed":         cfg.Seed,
		"retries":      cfg.MaxRetries,
	}
	log.WithFields(fields).Info("sampling 2d")

	began := time.Now()
	points, err := sampler.Sample(&poissondisk.Parameters2D{
		Amount:        s.Amount,
		MinDistance:   s.MinDistance,
		Region:        region,
		StartPosition: start,
	})
	if err != nil {
		return err
	}
	log.WithFields(fields).WithFields(logrus.Fields{
		"placed":      len(points),
		"min_spacing": points.MinSpacing(),
		"elapsed":     time.Since(began),
	}).Info("sampled 2d")

	return write(s, points, points, log)
}

func run3D(s *Settings, log *logrus.Logger) error {
	region, start, err := s.region3D()
	if err != nil {
		return err
	}
	if s.Start != "" {
		start, err = parseCoord3D(s.Start)
		if err != nil {
			return errors.Wrap(err, "start")
		}
	}

	cfg := &poissondisk.Config{Seed: s.Seed, MaxRetries: s.Retries}
	sampler, err := poissondisk.NewSampler3DFromConfig(cfg)
	if err != nil {
		return err
	}

	fields := logrus.Fields{
		"amount":       s.Amount,
		"min_distance": s.MinDistance,
		"region":       region.String(),
		"seed":         cfg.Seed,
		"retries":      cfg.MaxRetries,
	}
	log.WithFields(fields).Info("sampling 3d")

	began := time.Now()
	points, err := sampler.Sample(&poissondisk.Parameters3D{
		Amount:        s.Amount,
		MinDistance:   s.MinDistance,
		Region:        region,
		StartPosition: start,
	})
	if err != nil {
		return err
	}
	log.WithFields(fields).WithFields(logrus.Fields{
		"placed":      len(points),
		"min_spacing": points.MinSpacing(),
		"elapsed":     time.Since(began),
	}).Info("sampled 3d")

	// pngs of 3d points are drawn looking down the z axis
	return write(s, points, points.Flatten(), log)
}

// jsonSaver is satisfied by Points2D & Points3D
type jsonSaver interface {
	SaveJSON(fpath string) error
}

// write saves whatever outputs were asked for
func write(s *Settings, all jsonSaver, flat poissondisk.Points2D, log *logrus.Logger) error {
	if s.JSON != "" {
		err := all.SaveJSON(s.JSON)
		if err != nil {
			return err
		}
		log.WithField("path", s.JSON).Info("wrote json")
	}
	if s.PNG != "" {
		err := poissondisk.SavePNG(s.PNG, flat, &poissondisk.RenderOptions{Cells: s.Cells})
		if err != nil {
			return err
		}
		log.WithField("path", s.PNG).Info("wrote png")
	}
	if s.JSON == "" && s.PNG == "" {
		log.Warn("no --json or --png given, points were not written anywhere")
	}
	return nil
}
