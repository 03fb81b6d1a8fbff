package token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadUTF8            = errors.New("bad utf8")
	ErrInvalidCodePoint   = errors.New("invalid code point")
	ErrUnterminated       = errors.New("unterminated")
	ErrUnexpected         = errors.New("unexpected")
	ErrNewlineInString    = errors.New("newline in string")
	ErrBadEscape          = errors.New("bad escape")
	ErrBadUnicode         = errors.New("bad unicode")
	ErrMultilineString    = errors.New("multiline string")
	ErrNumber             = errors.New("number")
	ErrNumberSuffix       = errors.New("number suffix")
	ErrKeyword            = errors.New("keyword")
	ErrAmbiguous          = errors.New("ambiguous identifier")
	ErrEscLine            = errors.New("line continuation")
	ErrMissingSpace       = errors.New("missing whitespace")
	ErrTagWithSuffix      = errors.New("tag and suffix")
	ErrMissingName        = errors.New("missing name")
	ErrEntryAfterChildren = errors.New("entry after children")
	ErrDuplicateChildren  = errors.New("duplicate children")
	ErrMultiple           = errors.New("multiple errors")
)

// Error is a positioned error.  Err is the kind of error, one of the
// sentinel errors above.  Token is the offending token if any; Pos is
// used when there is no token.  An Error with neither refers to the end
// of the input.
//
// An aggregate Error has Err == ErrMultiple and lists its members in
// Errs.
type Error struct {
	Err   error
	Msg   string
	Token *Token
	Pos   *Pos
	Errs  []*Error
}

func NewError(kind error, tok *Token, format string, args ...any) *Error {
	e := &Error{Err: kind, Msg: fmt.Sprintf(format, args...)}
	if tok != nil {
		t := *tok
		t.Errs = nil
		e.Token = &t
	}
	return e
}

func NewErrorAt(kind error, p Pos, format string, args ...any) *Error {
	return &Error{Err: kind, Msg: fmt.Sprintf(format, args...), Pos: &p}
}

func EOFError(kind error, format string, args ...any) *Error {
	return &Error{Err: kind, Msg: fmt.Sprintf(format, args...)}
}

// Where returns the position of e, or nil if e refers to the end of the
// input.
func (e *Error) Where() *Pos {
	if e.Pos != nil {
		return e.Pos
	}
	if e.Token != nil && e.Token.Type != TEOF {
		return &e.Token.Start
	}
	return nil
}

func (e *Error) location() string {
	if p := e.Where(); p != nil {
		return "at " + p.String()
	}
	return "at end of input"
}

// Message returns the text of e without its location.
func (e *Error) Message() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Error() string {
	if len(e.Errs) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%d errors occurred", len(e.Errs))
		for _, sub := range e.Errs {
			b.WriteString("\n\t- ")
			b.WriteString(sub.Error())
		}
		return b.String()
	}
	return e.Message() + " " + e.location()
}

func (e *Error) Unwrap() []error {
	res := make([]error, 0, len(e.Errs)+1)
	if e.Err != nil {
		res = append(res, e.Err)
	}
	for _, sub := range e.Errs {
		res = append(res, sub)
	}
	return res
}

// Join returns nil for no errors, the error itself for a single
// error and an aggregate otherwise.
func Join(errs []*Error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	flat := make([]*Error, 0, len(errs))
	for _, e := range errs {
		if len(e.Errs) > 0 {
			flat = append(flat, e.Errs...)
			continue
		}
		flat = append(flat, e)
	}
	return &Error{Err: ErrMultiple, Errs: flat}
}

// Errors returns the list of errors held in err.  An aggregate is
// expanded into its members.
func Errors(err error) []*Error {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	if len(e.Errs) > 0 {
		return e.Errs
	}
	return []*Error{e}
}
