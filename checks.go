package gwaskit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Check is one validation step. OK is printed when Run succeeds.
type Check struct {
	OK  string
	Run func() error
}

var (
	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed, color.Bold).SprintFunc()
	noteMark = color.New(color.FgYellow).SprintFunc()
)

// RunChecks runs checks in order, printing "✓ OK" for each one passing.
// The first failure is printed as "Error: ..." and returned; later
// checks do not run. notes are printed as "! ..." once all checks pass.
func RunChecks(w io.Writer, checks []Check, notes ...string) error {
	for _, c := range checks {
		if err := c.Run(); err != nil {
			return Fail(w, err)
		}
		fmt.Fprintf(w, "%s %s\n", passMark("✓"), c.OK)
	}

	for _, n := range notes {
		fmt.Fprintf(w, "%s %s\n", noteMark("!"), n)
	}

	return nil
}

// Fail prints err as "Error: ..." and returns it.
func Fail(w io.Writer, err error) error {
	fmt.Fprintf(w, "%s %v\n", failMark("Error:"), err)
	return err
}
