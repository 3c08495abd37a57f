package gwaskit

import (
	"math"

	"github.com/pkg/errors"
)

// AssocRecord is one tested site of a GEMMA association table.
type AssocRecord struct {
	SiteID int64
	PValue float64
	Score  float64 // -log10(PValue)
}

// ScoreSource says where the p-value of a GEMMA table lives. GEMMA
// writes p_lrt, p_wald or p_score depending on the test, always as the
// last column, so both conventions are in use.
type ScoreSource struct {
	Mode   string // ScoreNamed or ScoreLast
	Column string // used with ScoreNamed
}

func (s ScoreSource) validate() error {
	switch s.Mode {
	case ScoreLast:
		return nil
	case ScoreNamed:
		if s.Column == "" {
			return errors.New("named score mode needs a p-value column")
		}
		return nil
	}
	return errors.Errorf("unknown score mode %q (want %q or %q)", s.Mode, ScoreNamed, ScoreLast)
}

func (s ScoreSource) column(t *Table) (int, error) {
	if err := s.validate(); err != nil {
		return -1, err
	}
	if s.Mode == ScoreLast {
		return t.LastColumn(), nil
	}
	return t.Column(s.Column)
}

// Score is -log10(p). p must be a positive finite number.
func Score(p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return 0, newError(Numeric, "", "p-value %v: logarithm undefined", p)
	}
	return -math.Log10(p), nil
}

// ParseAssoc derives the score of every row of a GEMMA table. key names
// the site id column.
func ParseAssoc(t *Table, key string, src ScoreSource) ([]AssocRecord, error) {
	keyCol, err := t.Column(key)
	if err != nil {
		return nil, err
	}

	pCol, err := src.column(t)
	if err != nil {
		return nil, err
	}

	records := make([]AssocRecord, len(t.Rows))

	for i := range t.Rows {
		id, err := t.Int(i, keyCol)
		if err != nil {
			return nil, err
		}

		p, err := t.Float(i, pCol)
		if err != nil {
			return nil, err
		}

		score, err := Score(p)
		if err != nil {
			return nil, newError(Numeric, t.Path, "column %s row %d: p-value %v must be > 0", t.Header[pCol], i+1, p)
		}

		records[i] = AssocRecord{SiteID: id, PValue: p, Score: score}
	}

	return records, nil
}

// ReadAssoc loads a tab delimited GEMMA association file.
func ReadAssoc(path, key string, src ScoreSource) ([]AssocRecord, error) {
	t, err := ReadTable(path, TabDelim)
	if err != nil {
		return nil, err
	}
	return ParseAssoc(t, key, src)
}

// ReadScores loads only the scores of a GEMMA association file, no site
// id column needed.
func ReadScores(path string, src ScoreSource) ([]float64, error) {
	t, err := ReadTable(path, TabDelim)
	if err != nil {
		return nil, err
	}

	pCol, err := src.column(t)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(t.Rows))
	for i := range t.Rows {
		p, err := t.Float(i, pCol)
		if err != nil {
			return nil, err
		}
		if scores[i], err = Score(p); err != nil {
			return nil, newError(Numeric, t.Path, "column %s row %d: p-value %v must be > 0", t.Header[pCol], i+1, p)
		}
	}

	return scores, nil
}
