// CLI tool to draw a manhattan plot of GEMMA association results on graph
// nodes, placing every node on its closest reference path (gfa2bin nearest
// output) and colouring it by its distance to that path.
package main

import (
	"os"

	"github.com/pangwas/gwaskit"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("manhattanNearest", "Manhattan plotter from GEMMA input (nodes), positioned by a gfa2bin nearest table.")

	input    = app.Flag("input", "Path to the GEMMA association file").Short('i').Required().String()
	distance = app.Flag("distance", "gfa2bin nearest distance file").Short('d').Required().String()
	output   = app.Flag("output", "Path to the output file (pdf[default]/png/svg/html)").Short('o').Required().String()
	config   = app.Flag("config", "TOML file overriding the plot defaults").Short('c').String()
	verbose  = app.Flag("verbose", "Debug logging").Short('v').Bool()

	scoreMode    = app.Flag("score-column", "Where the p-value is: 'last' column or the 'named' --pvalue-column").Enum(gwaskit.ScoreLast, gwaskit.ScoreNamed)
	pvalueColumn = app.Flag("pvalue-column", "p-value column for --score-column=named").String()
	colourRange  = app.Flag("colour-range", "Distance colour range: 90th 'percentile' or 'fixed' -1..1000").Enum(gwaskit.ColourPercentile, gwaskit.ColourFixed)

	thresholdSet bool
	threshold    = app.Flag("threshold", "Plot only sites with -log10(p) above this").Action(given(&thresholdSet)).Float64()

	gapSet bool
	gap    = app.Flag("gap", "Space between reference paths on the x axis").Action(given(&gapSet)).Int64()
)

func given(set *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*set = true
		return nil
	}
}

func overrides() gwaskit.Overrides {
	o := gwaskit.Overrides{ScoreMode: *scoreMode, PValueColumn: *pvalueColumn, ColourRange: *colourRange}
	if thresholdSet {
		o.Threshold = threshold
	}
	if gapSet {
		o.Gap = gap
	}
	return o
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := gwaskit.NewLogger(os.Stderr, *verbose)

	cfg, err := gwaskit.ResolveConfig(*config, overrides())
	if err != nil {
		app.Fatalf("%v", err)
	}

	job := &gwaskit.NearestJob{Input: *input, Distance: *distance, Output: *output, Config: cfg}

	if _, err := job.Run(log); err != nil {
		app.Fatalf("%v", err)
	}
}
