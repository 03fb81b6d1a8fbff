package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type lineOp struct {
	op   diffpatch.Operation
	text string
}

// Lines returns a line diff from from to to, with lines prefixed by
// '-', '+' or ' ', and whether the texts differ.  Only context
// unchanged lines are kept around each change, runs of other unchanged
// lines are replaced by a "..." line.  A negative context keeps every
// line.
func Lines(from, to string, context int) (string, bool) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var ops []lineOp
	changed := false
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			changed = true
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, lineOp{op: d.Type, text: line})
		}
	}
	if !changed {
		return "", false
	}
	keep := make([]bool, len(ops))
	for i, o := range ops {
		if context < 0 || o.op != diffpatch.DiffEqual {
			keep[i] = true
			continue
		}
		for j := max(0, i-context); j <= min(len(ops)-1, i+context); j++ {
			if ops[j].op != diffpatch.DiffEqual {
				keep[i] = true
				break
			}
		}
	}
	var sb strings.Builder
	skipped := false
	for i, o := range ops {
		if !keep[i] {
			if !skipped {
				sb.WriteString("...\n")
			}
			skipped = true
			continue
		}
		skipped = false
		switch o.op {
		case diffpatch.DiffInsert:
			sb.WriteByte('+')
		case diffpatch.DiffDelete:
			sb.WriteByte('-')
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(o.text)
		if !strings.HasSuffix(o.text, "\n") {
			sb.WriteString("\n\\ no newline at end of file\n")
		}
	}
	return sb.String(), true
}

// splitLines splits s after each newline.
func splitLines(s string) []string {
	var res []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			res = append(res, s)
			break
		}
		res = append(res, s[:i+1])
		s = s[i+1:]
	}
	return res
}
