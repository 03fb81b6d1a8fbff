// Package token provides tokenization for KDL documents and KDL queries.
//
// [Tokenize] tokenizes a whole input, [NewTokenizer] returns a [Tokenizer]
// that produces one [Token] at a time.
//
// Tokens tile the input: concatenating the Text of every token in order
// reproduces the source exactly.  Malformed input that still has a
// plausible reading produces a token carrying [Error] values in
// Token.Errs; input that cannot be tokenized further (unterminated
// strings or comments, invalid utf8, disallowed code points) stops the
// tokenizer with an error.
//
// # Query mode
//
// With [TokenizeQuery], the tokenizer additionally recognizes the
// comparison and grouping operators of KDL queries.
package token
