// Package format enumerates the output formats encoders can produce.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//	    // err wraps format.ErrBadFormat
//	}
//	encode.Encode(node, w, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/textconv/encode - Encode trees to text
package format
