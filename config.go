package gwaskit

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// score column conventions of GEMMA tables
const (
	ScoreNamed = "named"
	ScoreLast  = "last"
)

// colour range of the distance scale
const (
	ColourPercentile = "percentile"
	ColourFixed      = "fixed"
)

// Config holds the tunables shared by the plotting tools. Each tool
// starts from its own defaults, then a TOML file, then flags.
type Config struct {
	// join key column of the GEMMA table, "ps" for graph nodes
	KeyColumn string `toml:"key_column"`

	// "named" reads PValueColumn, "last" reads the last column
	ScoreMode    string `toml:"score_mode"`
	PValueColumn string `toml:"pvalue_column"`

	// rows with -log10(p) <= Threshold are not plotted
	Threshold float64 `toml:"threshold"`

	// extra space between contigs on the x axis
	Gap int64 `toml:"gap"`

	ColourRange      string  `toml:"colour_range"`
	ColourPercentile float64 `toml:"colour_percentile"`
	ColourMin        float64 `toml:"colour_min"`
	ColourMax        float64 `toml:"colour_max"`

	// QQ plot: keep every Stride-th point of the lower 90%
	Stride int `toml:"stride"`

	// appended to output names without a known image extension
	DefaultExt string `toml:"default_ext"`
}

// DefaultConfig matches the workflow scripts: last column p-values,
// threshold 2, distance colours scaled to the 90th percentile.
func DefaultConfig() Config {
	return Config{
		KeyColumn:        "ps",
		ScoreMode:        ScoreLast,
		PValueColumn:     "p_lrt",
		Threshold:        DefaultThreshold,
		ColourRange:      ColourPercentile,
		ColourPercentile: 0.9,
		ColourMin:        -1,
		ColourMax:        1000,
		Stride:           1,
		DefaultExt:       ".pdf",
	}
}

// LoadConfig overlays the TOML file fn on top of base. Keys missing from
// the file keep the value in base.
func LoadConfig(fn string, base Config) (Config, error) {
	if !Exists(fn) {
		return base, newError(FileNotFound, fn, "config file does not exist")
	}

	cfg := base

	if _, err := toml.DecodeFile(fn, &cfg); err != nil {
		return base, errors.Wrapf(err, "decoding config %s", fn)
	}

	return cfg, nil
}

// ScoreSource is the p-value column selection described by the config.
func (c Config) ScoreSource() ScoreSource {
	return ScoreSource{Mode: c.ScoreMode, Column: c.PValueColumn}
}

// Validate rejects settings no tool can run with.
func (c Config) Validate() error {
	if c.KeyColumn == "" {
		return errors.New("key_column must not be empty")
	}

	if err := c.ScoreSource().validate(); err != nil {
		return err
	}

	switch c.ColourRange {
	case ColourPercentile:
		if c.ColourPercentile <= 0 || c.ColourPercentile > 1 {
			return errors.Errorf("colour_percentile %v outside (0,1]", c.ColourPercentile)
		}
	case ColourFixed:
		if c.ColourMax <= c.ColourMin {
			return errors.Errorf("colour_max %v must exceed colour_min %v", c.ColourMax, c.ColourMin)
		}
	default:
		return errors.Errorf("unknown colour_range %q (want %q or %q)", c.ColourRange, ColourPercentile, ColourFixed)
	}

	if c.Gap < 0 {
		return errors.Errorf("gap %d is negative", c.Gap)
	}

	if !KnownExt(c.DefaultExt) {
		return errors.Errorf("default_ext %q is not a supported output format", c.DefaultExt)
	}

	return nil
}

// Overrides are the config settings given as flags. Empty strings and
// nil pointers were not given and leave the config alone.
type Overrides struct {
	ScoreMode    string
	PValueColumn string
	ColourRange  string

	Threshold *float64
	Gap       *int64
	Stride    *int
}

// Apply returns c with the given overrides set.
func (c Config) Apply(o Overrides) (Config, error) {
	if o.ScoreMode != "" {
		c.ScoreMode = o.ScoreMode
	}
	if o.PValueColumn != "" {
		c.PValueColumn = o.PValueColumn
	}
	if o.ColourRange != "" {
		c.ColourRange = o.ColourRange
	}
	if o.Threshold != nil {
		c.Threshold = *o.Threshold
	}
	if o.Gap != nil {
		c.Gap = *o.Gap
	}
	if o.Stride != nil {
		if *o.Stride < 1 {
			return c, errors.Errorf("stride must be a positive number, got %d", *o.Stride)
		}
		c.Stride = *o.Stride
	}
	return c, nil
}

// ResolveConfig layers the TOML file fn (skipped when empty) and then o
// over DefaultConfig.
func ResolveConfig(fn string, o Overrides) (Config, error) {
	cfg := DefaultConfig()

	if fn != "" {
		var err error
		if cfg, err = LoadConfig(fn, cfg); err != nil {
			return cfg, err
		}
	}

	return cfg.Apply(o)
}
