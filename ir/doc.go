// Package ir provides the document model of a KDL document.
//
// A [Document] holds [Node]s; a Node has a name ([Identifier]), an
// optional type annotation ([Tag]), [Entry] values (arguments and
// properties) and optional children.  Every element carries, next to
// its data, the formatting it was read with: the exact source text of
// names and values (Representation) and the whitespace and comments
// around each part (Leading, Trailing, ...).  These formatting fields
// are *string; nil means "use canonical formatting".
//
// Setting a value or name through the element methods clears its
// Representation, so that it is rendered canonically from then on.
package ir
