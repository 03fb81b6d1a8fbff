// Package parse parses KDL text into the document model of package ir.
//
// # Usage
//
//	doc, err := parse.ParseDocument([]byte("node 1 key=#true {\n\tchild\n}\n"))
//	if err != nil {
//	    return err
//	}
//
//	// parse a single value or entry
//	v, err := parse.Parse([]byte(`(u8)10`), parse.ParseAs(ir.ValueKind))
//
// Parsing is lossless: formatting the result with package encode
// reproduces the input byte for byte.
//
// # Errors
//
// Problems with a plausible reading (a misspelled keyword, a bad
// escape, missing whitespace between entries) are collected and parsing
// continues.  Problems after which the structure is unknown stop the
// parser.  The returned error is a *token.Error; when more than one
// error was found it is an aggregate listing all of them, see
// token.Errors.
package parse
