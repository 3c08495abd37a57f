// CLI tool to validate the sample sheet against the phenotype table:
//     sample names only use letters, digits, '_' and '-'
//     both files list the same samples
//     every fastq file exists
//     no sample is listed twice
//     phenotype values are numeric or NA
package main

import (
	"os"

	"github.com/pangwas/gwaskit"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("validateSamples", "Validate the sample and phenotypes input files")

	samplesFn    = app.Flag("samples_file", "The samples file").Short('s').Required().String()
	phenotypesFn = app.Flag("phenotypes_file", "The phenotypes file").Short('p').Required().String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	samples, err := gwaskit.ReadSampleSheet(*samplesFn)
	if err != nil {
		gwaskit.Fail(os.Stdout, err)
		os.Exit(1)
	}

	phenotypes, err := gwaskit.ReadPhenotypes(*phenotypesFn)
	if err != nil {
		gwaskit.Fail(os.Stdout, err)
		os.Exit(1)
	}

	checks := []gwaskit.Check{
		{
			OK:  "Sample names are in the correct format",
			Run: func() error { return gwaskit.CheckSampleNames(samples) },
		},
		{
			OK:  "Sample names in the phenotypes file are the same as in the samples file",
			Run: func() error { return gwaskit.CheckSampleSets(samples, phenotypes) },
		},
		{
			OK:  "Fastq files exist",
			Run: func() error { return gwaskit.CheckReadFiles(samples) },
		},
		{
			OK:  "No duplicates in the samples file",
			Run: func() error { return gwaskit.CheckDuplicateSamples(samples) },
		},
		{
			OK:  "Phenotype values are numeric",
			Run: func() error { return gwaskit.CheckPhenotypeValues(phenotypes) },
		},
	}

	if err := gwaskit.RunChecks(os.Stdout, checks); err != nil {
		os.Exit(1)
	}
}
