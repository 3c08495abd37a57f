// CLI tool to write a copy of a PLINK .fam file with its phenotype column
// replaced by the phenotype_value of each sample in a tab delimited
// phenotype table.
package main

import (
	"os"

	"github.com/pangwas/gwaskit"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("phenoFam", "Set the phenotype column of a FAM file.")

	famFn   = app.Arg("fam", "Input FAM file").Required().String()
	phenoFn = app.Arg("phenotypes", "Tab delimited file with sample and phenotype_value columns").Required().String()
	outFn   = app.Arg("out", "Output FAM file").Required().String()
	verbose = app.Flag("verbose", "Debug logging").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := gwaskit.NewLogger(os.Stderr, *verbose)

	log.Infof("Reading FAM file: %s", *famFn)
	fam, err := gwaskit.ReadFAM(*famFn)
	if err != nil {
		app.Fatalf("%v", err)
	}

	log.Infof("Reading phenotypes: %s", *phenoFn)
	values, err := gwaskit.ReadPhenotypeValues(*phenoFn)
	if err != nil {
		app.Fatalf("%v", err)
	}

	fam, err = gwaskit.SetPhenotypes(fam, values)
	if err != nil {
		app.Fatalf("%v", err)
	}

	if err := gwaskit.WriteFAM(*outFn, fam); err != nil {
		app.Fatalf("%v", err)
	}

	log.WithField("samples", len(fam)).Infof("Wrote %s", *outFn)
}
