package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	TagColor
	NodeNameColor
	PropColor
	StringColor
	NumberColor
	KeywordColor
	SepColor
)

var colorAttrNames = map[ColorAttr]string{
	CommentColor:  "comment",
	TagColor:      "tag",
	NodeNameColor: "node",
	PropColor:     "prop",
	StringColor:   "string",
	NumberColor:   "number",
	KeywordColor:  "keyword",
	SepColor:      "sep",
}

func (a ColorAttr) String() string {
	return colorAttrNames[a]
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			CommentColor:  color.BlueString,
			TagColor:      color.RGB(74, 92, 138).SprintfFunc(),
			NodeNameColor: color.RGB(128, 168, 196).SprintfFunc(),
			PropColor:     color.RGB(196, 96, 16).SprintfFunc(),
			StringColor:   color.RGB(8, 196, 16).SprintfFunc(),
			NumberColor:   color.RGB(128, 216, 236).SprintfFunc(),
			KeywordColor:  color.RGB(168, 0, 196).SprintfFunc(),
			SepColor:      color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color renders s with the color of a.
func (c *Colors) Color(a ColorAttr, s string) string {
	if s == "" {
		return s
	}
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f != nil {
		return f
	}
	if c.Default != nil {
		return c.Default
	}
	return colorDefault
}
