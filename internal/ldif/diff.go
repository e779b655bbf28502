package ldif

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Colors holds the functions used to color diff lines.
type Colors struct {
	Added   func(string, ...any) string
	Removed func(string, ...any) string
	Context func(string, ...any) string
}

// NewColors returns green additions and red removals. Whether escapes are
// written follows color.NoColor.
func NewColors() *Colors {
	return &Colors{
		Added:   color.GreenString,
		Removed: color.RedString,
		Context: color.New(color.Faint).SprintfFunc(),
	}
}

// Diff returns a line diff of before and after. Added lines start with
// "+ ", removed lines with "- ", and unchanged lines with two spaces.
// A nil colors disables coloring.
func Diff(before, after string, colors *Colors) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix, paint := "  ", (func(string, ...any) string)(nil)
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colors != nil {
				paint = colors.Added
			}
		case diffpatch.DiffDelete:
			prefix = "- "
			if colors != nil {
				paint = colors.Removed
			}
		default:
			if colors != nil {
				paint = colors.Context
			}
		}

		for _, line := range splitLines(d.Text) {
			line = prefix + line
			if paint != nil {
				line = paint("%s", line)
			}
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
