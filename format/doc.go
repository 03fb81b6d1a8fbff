// Package format names the output formats of the kdl tools and dumps
// KDL trees in them.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	err = format.Dump(os.Stdout, doc, f)
//
// A KDL dump is the lossless text of the tree.  JSON and YAML dumps
// give the structure only: tags, names, arguments and properties in
// source order and children, where a node with an empty children block
// has an empty children list and a node without one has none.
//
// # Related Packages
//
//   - github.com/signadot/go-kdl/parse - Parse text to IR
//   - github.com/signadot/go-kdl/encode - Encode IR to text
package format
