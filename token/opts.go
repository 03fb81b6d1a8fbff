package token

type tokenOpts struct {
	query    bool
	suffixes bool
}

type TokenOpt func(*tokenOpts)

// TokenizeQuery enables the query grammar operators.
func TokenizeQuery() TokenOpt {
	return func(o *tokenOpts) { o.query = true }
}

// NumberSuffixes controls whether numbers may carry a suffix type
// annotation such as 10px or 10#px.  When disabled, a suffix is
// reported as a recoverable error.
func NumberSuffixes(v bool) TokenOpt {
	return func(o *tokenOpts) { o.suffixes = v }
}
