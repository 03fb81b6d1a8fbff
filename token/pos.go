package token

import "fmt"

// Pos is a position in the source.  Line and Column are 1-based, Column
// counts code points and CRLF counts as a single newline.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p is strictly before q.
func (p Pos) Before(q Pos) bool {
	return p.Offset < q.Offset
}
