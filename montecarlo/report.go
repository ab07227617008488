package montecarlo

import (
	"encoding/json"
	"math"
)

// Report is a flat, serializable summary of a Stats value.
type Report struct {
	GridSize     int     `yaml:"grid_size" json:"grid_size"`
	Trials       int     `yaml:"trials" json:"trials"`
	Seed         int64   `yaml:"seed" json:"seed"`
	Strategy     string  `yaml:"strategy" json:"strategy"`
	Mean         float64 `yaml:"mean" json:"mean"`
	Stddev       float64 `yaml:"stddev" json:"stddev"`
	ConfidenceLo float64 `yaml:"confidence_lo" json:"confidence_lo"`
	ConfidenceHi float64 `yaml:"confidence_hi" json:"confidence_hi"`
}

// Report summarizes s.
func (s *Stats) Report() Report {
	return Report{
		GridSize:     s.n,
		Trials:       len(s.thresholds),
		Seed:         s.seed,
		Strategy:     s.strategy.String(),
		Mean:         s.Mean(),
		Stddev:       s.Stddev(),
		ConfidenceLo: s.ConfidenceLo(),
		ConfidenceHi: s.ConfidenceHi(),
	}
}

// MarshalJSON encodes undefined (NaN) statistics as null; encoding/json
// rejects NaN.
func (r Report) MarshalJSON() ([]byte, error) {
	type jsonReport struct {
		GridSize     int      `json:"grid_size"`
		Trials       int      `json:"trials"`
		Seed         int64    `json:"seed"`
		Strategy     string   `json:"strategy"`
		Mean         *float64 `json:"mean"`
		Stddev       *float64 `json:"stddev"`
		ConfidenceLo *float64 `json:"confidence_lo"`
		ConfidenceHi *float64 `json:"confidence_hi"`
	}

	return json.Marshal(jsonReport{
		GridSize:     r.GridSize,
		Trials:       r.Trials,
		Seed:         r.Seed,
		Strategy:     r.Strategy,
		Mean:         finite(r.Mean),
		Stddev:       finite(r.Stddev),
		ConfidenceLo: finite(r.ConfidenceLo),
		ConfidenceHi: finite(r.ConfidenceHi),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
