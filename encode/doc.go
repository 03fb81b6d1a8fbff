// Package encode renders elements of package ir as KDL text.
//
// # Usage
//
//	doc, _ := parse.ParseDocument(src)
//	out := encode.Format(doc) // == string(src)
//
//	// canonical formatting
//	out = encode.Format(encode.ClearFormat(doc))
//
//	// with colors
//	err := encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Formatting fields left nil (see package ir) are filled in with
// canonical defaults: nodes indented with one tab per level and
// terminated by a newline, entries separated by a single space, names
// and strings bare when they are valid identifiers.
//
// # Related Packages
//
//   - github.com/signadot/go-kdl/ir - document model
//   - github.com/signadot/go-kdl/parse - parse text to the document model
package encode
