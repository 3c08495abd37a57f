// CLI tool to validate a kinship matrix before it is handed to GEMMA:
//     the matrix is square and its dimension equals the sample count
//     every entry is numeric
// The sample order cannot be checked and is left to the user.
package main

import (
	"os"

	"github.com/pangwas/gwaskit"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("validateKinship", "Validate the kinship matrix file")

	kinshipFn = app.Flag("kinship_matrix", "The kinship matrix file (whitespace delimited text or .npy)").Short('k').Required().String()
	samplesFn = app.Flag("samples_file", "The samples file").Short('s').Required().String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if !gwaskit.Exists(*kinshipFn) {
		gwaskit.Fail(os.Stdout, gwaskit.NotFound(*kinshipFn, "The kinship matrix file %s does not exist"))
		os.Exit(1)
	}
	if !gwaskit.Exists(*samplesFn) {
		gwaskit.Fail(os.Stdout, gwaskit.NotFound(*samplesFn, "The samples file %s does not exist"))
		os.Exit(1)
	}

	var kinship *gwaskit.KinshipMatrix

	checks := []gwaskit.Check{
		{
			OK: "The number of rows and columns in the kinship matrix matches the number of samples in the samples file",
			Run: func() error {
				n, err := gwaskit.CountSamples(*samplesFn)
				if err != nil {
					return err
				}
				if kinship, err = gwaskit.ReadKinship(*kinshipFn); err != nil {
					return err
				}
				return gwaskit.CheckKinshipShape(kinship, *samplesFn, n)
			},
		},
		{
			OK: "The entries in the kinship matrix are numeric",
			Run: func() error {
				_, err := gwaskit.CheckKinshipNumeric(kinship)
				return err
			},
		},
	}

	err := gwaskit.RunChecks(os.Stdout, checks,
		"Important: Make sure the order of the samples in the kinship matrix should match the order in the samples file "+*samplesFn+"!",
		"The pipeline cannot check this, so please verify it manually.")

	if err != nil {
		os.Exit(1)
	}
}
