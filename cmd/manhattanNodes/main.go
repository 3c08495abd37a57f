// CLI tool to draw a manhattan plot of GEMMA association results against
// the graph node id.
package main

import (
	"os"

	"github.com/pangwas/gwaskit"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("manhattanNodes", "Manhattan plotter from GEMMA input (nodes).")

	input   = app.Flag("input", "Path to the input file").Short('i').Required().String()
	output  = app.Flag("output", "Path to the output file (pdf[default]/png/svg/html)").Short('o').Required().String()
	config  = app.Flag("config", "TOML file overriding the plot defaults").Short('c').String()
	verbose = app.Flag("verbose", "Debug logging").Short('v').Bool()

	scoreMode    = app.Flag("score-column", "Where the p-value is: 'last' column or the 'named' --pvalue-column").Enum(gwaskit.ScoreLast, gwaskit.ScoreNamed)
	pvalueColumn = app.Flag("pvalue-column", "p-value column for --score-column=named").String()

	thresholdSet bool
	threshold    = app.Flag("threshold", "Plot only sites with -log10(p) above this").Action(given(&thresholdSet)).Float64()
)

func given(set *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*set = true
		return nil
	}
}

func overrides() gwaskit.Overrides {
	o := gwaskit.Overrides{ScoreMode: *scoreMode, PValueColumn: *pvalueColumn}
	if thresholdSet {
		o.Threshold = threshold
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

	job := &gwaskit.NodesJob{Input: *input, Output: *output, Config: cfg}

	if _, err := job.Run(log); err != nil {
		app.Fatalf("%v", err)
	}
}
