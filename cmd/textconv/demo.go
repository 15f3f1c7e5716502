package main

import (
	"fmt"
	"io"

	"github.com/signadot/textconv/debug"
	"github.com/signadot/textconv/encode"
	"github.com/signadot/textconv/format"
	"github.com/signadot/textconv/ir"

	"github.com/scott-cotton/cli"
)

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments", cli.ErrUsage)
	}
	tree := sampleTree()
	defer tree.Release(nil)
	if debug.Tree() {
		theLog.Info("sample tree", "path", tree.Path(), "size", tree.Size(), "text", debug.Text{Node: tree})
	}
	return writeDemo(cc.Out, tree, cfg.format(), cfg.encOpts(cc.Out)...)
}

// writeDemo writes the rendering of tree. Text output is followed by the
// tree's size; other formats log the size so that w stays parseable.
func writeDemo(w io.Writer, tree *ir.Node, f format.Format, opts ...encode.EncodeOption) error {
	if err := encode.Encode(tree, w, opts...); err != nil {
		return fmt.Errorf("error encoding sample: %w", err)
	}
	if !f.IsText() {
		theLog.Info("sample tree", "format", f, "size", tree.Size())
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d\n", tree.Size())
	return err
}
