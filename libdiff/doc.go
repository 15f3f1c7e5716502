// Package libdiff computes line diffs between the renderings of two trees.
//
// # Usage
//
//	lines := libdiff.Diff(before, after)
//	fmt.Println(libdiff.String(before, after))
//
// Both trees are rendered in indented text form so that each child sits on
// its own line; the diff is then taken line by line.
//
// # Related Packages
//
//   - github.com/signadot/textconv/ir - Value tree
//   - github.com/signadot/textconv/encode - Rendering used for the diff
package libdiff
