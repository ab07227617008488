package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percolation/montecarlo"
)

// labelWidth aligns the "=" column of the text report.
const labelWidth = 23

// writeReport renders r in the requested format.
func writeReport(w io.Writer, format string, r montecarlo.Report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return writeText(w, r)
	}
}

func writeText(w io.Writer, r montecarlo.Report) error {
	lines := [][2]string{
		{"mean", formatFloat(r.Mean)},
		{"stddev", formatFloat(r.Stddev)},
		{"95% confidence interval", "[" + formatFloat(r.ConfidenceLo) + ", " + formatFloat(r.ConfidenceHi) + "]"},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-*s = %s\n", labelWidth, l[0], l[1]); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
