// CLI tool to draw a QQ plot of GEMMA p-values against the uniform null.
package main

import (
	"os"

	"github.com/pangwas/gwaskit"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("qqPlot", "QQ plotter from GEMMA input.")

	input   = app.Flag("input", "Path to the GEMMA file").Short('i').Required().String()
	output  = app.Flag("output", "Output file name (pdf[default]/png/svg/html)").Short('o').Required().String()
	config  = app.Flag("config", "TOML file overriding the plot defaults").Short('c').String()
	verbose = app.Flag("verbose", "Debug logging").Short('v').Bool()

	scoreMode    = app.Flag("score-column", "Where the p-value is: 'last' column or the 'named' --pvalue-column").Enum(gwaskit.ScoreLast, gwaskit.ScoreNamed)
	pvalueColumn = app.Flag("pvalue-column", "p-value column for --score-column=named").String()

	skipSet bool
	skip    = app.Flag("skip", "Plot every N-th entry of the lower 90%").Short('s').Action(given(&skipSet)).Int()
)

func given(set *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*set = true
		return nil
	}
}

func overrides() gwaskit.Overrides {
	o := gwaskit.Overrides{ScoreMode: *scoreMode, PValueColumn: *pvalueColumn}
	if skipSet {
		o.Stride = skip
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

	job := &gwaskit.QQJob{Input: *input, Output: *output, Config: cfg}

	if _, err := job.Run(log); err != nil {
		app.Fatalf("%v", err)
	}
}
