package gwaskit

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NearestJob draws a manhattan plot of GEMMA results placed on the
// reference paths by a gfa2bin nearest table.
type NearestJob struct {
	Input    string // GEMMA association file
	Distance string // gfa2bin nearest table
	Output   string
	Config   Config
}

// Run executes the job and returns the path written.
func (j *NearestJob) Run(log logrus.FieldLogger) (string, error) {
	if err := j.Config.Validate(); err != nil {
		return "", errors.Wrap(err, "config")
	}

	log.Infof("Reading input file: %s", j.Input)
	assoc, err := ReadAssoc(j.Input, j.Config.KeyColumn, j.Config.ScoreSource())
	if err != nil {
		return "", err
	}

	log.Infof("Read gfa2bin distance file: %s", j.Distance)
	positions, err := ReadPositions(j.Distance)
	if err != nil {
		return "", err
	}

	log.Info("Merge association and distance tables")
	joined, err := Join(assoc, positions)
	if err != nil {
		return "", errors.Wrapf(err, "joining %s", j.Input)
	}
	log.WithFields(logrus.Fields{"assoc": len(assoc), "positions": len(positions), "joined": len(joined)}).Debug("joined")

	log.Info("Manhattan plot")
	m := BuildNearestManhattan(joined, len(assoc), j.Config)
	log.WithFields(logrus.Fields{"points": len(m.Points), "contigs": len(m.Ticks)}).Debug("filtered")

	out := OutputPath(j.Output, j.Config.DefaultExt)
	if err := RenderManhattan(m, out); err != nil {
		return "", err
	}

	log.Infof("Wrote %s", out)
	return out, nil
}

// NodesJob draws a manhattan plot of GEMMA results against node id.
type NodesJob struct {
	Input  string
	Output string
	Config Config
}

// Run executes the job and returns the path written.
func (j *NodesJob) Run(log logrus.FieldLogger) (string, error) {
	if err := j.Config.Validate(); err != nil {
		return "", errors.Wrap(err, "config")
	}

	log.Infof("Reading input file: %s", j.Input)
	assoc, err := ReadAssoc(j.Input, j.Config.KeyColumn, j.Config.ScoreSource())
	if err != nil {
		return "", err
	}

	log.Info("Plotting manhattan plot")
	m := BuildNodeManhattan(assoc, j.Config)
	log.WithField("points", len(m.Points)).Debug("filtered")

	out := OutputPath(j.Output, j.Config.DefaultExt)
	if err := RenderManhattan(m, out); err != nil {
		return "", err
	}

	log.Infof("Wrote %s", out)
	return out, nil
}

// QQJob draws a QQ plot of GEMMA p-values.
type QQJob struct {
	Input  string
	Output string
	Config Config
}

// Run executes the job and returns the path written.
func (j *QQJob) Run(log logrus.FieldLogger) (string, error) {
	if err := j.Config.Validate(); err != nil {
		return "", errors.Wrap(err, "config")
	}

	log.Infof("Reading input file: %s", j.Input)
	scores, err := ReadScores(j.Input, j.Config.ScoreSource())
	if err != nil {
		return "", err
	}

	log.Info("Calculating uniform distribution")
	qq := BuildQQ(scores, j.Config.Stride)
	log.WithFields(logrus.Fields{"sites": len(scores), "plotted": len(qq.Observed)}).Debug("subsampled")

	log.Info("Plotting QQ plot")
	out := OutputPath(j.Output, j.Config.DefaultExt)
	if err := RenderQQ(qq, out); err != nil {
		return "", err
	}

	log.Infof("Wrote %s", out)
	return out, nil
}
