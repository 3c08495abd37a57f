package main

import (
	"testing"

	"github.com/pangwas/gwaskit"
)

func TestOverrides(t *testing.T) {
	base := []string{"-i", "a.tsv", "-o", "out.png"}

	if _, err := app.Parse(base); err != nil {
		t.Fatal(err)
	}
	if o := overrides(); o.Threshold != nil {
		t.Fatalf("threshold not given but set: %v", *o.Threshold)
	}

	if _, err := app.Parse(append(base, "--threshold", "5.5", "--pvalue-column", "p_wald")); err != nil {
		t.Fatal(err)
	}

	cfg, err := gwaskit.ResolveConfig("", overrides())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threshold != 5.5 || cfg.PValueColumn != "p_wald" || cfg.ScoreMode != gwaskit.ScoreLast {
		t.Fatalf("got %+v", cfg)
	}
}
