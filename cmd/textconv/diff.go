package main

import (
	"fmt"
	"io"

	"github.com/signadot/textconv/ir"
	"github.com/signadot/textconv/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: diff takes no arguments", cli.ErrUsage)
	}
	changed, err := writeDiff(cc.Out, cfg.Set, nil)
	if err != nil {
		return err
	}
	if !changed {
		theLog.Info("no changes", "str2", cfg.Set)
	}
	return nil
}

// writeDiff writes the diff between the sample tree and a clone with str2
// set to set. Both trees are released with f before returning.
func writeDiff(w io.Writer, set string, f func(*ir.Node)) (bool, error) {
	from := sampleTree()
	defer from.Release(f)
	to := from.Clone()
	defer to.Release(f)

	str2, err := to.Index(1)
	if err != nil {
		return false, err
	}
	str2.SetString(set)
	if libdiff.Equal(from, to) {
		return false, nil
	}
	_, err = fmt.Fprintln(w, libdiff.String(from, to))
	return true, err
}
