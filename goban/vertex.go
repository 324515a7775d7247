package goban

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

// columnLabels are the column letters in board order. I is skipped
// so it cannot be confused with J or 1.
const columnLabels = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// MaxWidth is the widest board for which every column has its own
// letter.
const MaxWidth = len(columnLabels) - 1

// ParseVertex decodes a label such as "D4" on a board of the given
// dimensions. Column letters are case-insensitive and full-width
// input is folded to ASCII.
func ParseVertex(label string, height, width int) (Point, error) {
	s := strings.ToUpper(strings.TrimSpace(foldWidth(label)))
	if len(s) < 2 {
		return Point{}, errors.Wrapf(ErrOutOfRange, "malformed vertex %q", label)
	}
	col := strings.IndexByte(columnLabels, s[0])
	if col < 0 {
		return Point{}, errors.Wrapf(ErrOutOfRange, "bad column in vertex %q", label)
	}
	if s[1] < '1' || s[1] > '9' {
		return Point{}, errors.Wrapf(ErrOutOfRange, "bad row in vertex %q", label)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Point{}, errors.Wrapf(ErrOutOfRange, "bad row in vertex %q", label)
	}
	p := Point{Row: height - row, Col: col}
	if p.Row < 0 || p.Row >= height || p.Col >= width {
		return Point{}, errors.Wrapf(ErrOutOfRange, "vertex %q on a %dx%d board", label, height, width)
	}
	return p, nil
}

// FormatVertex is the inverse of ParseVertex.
func FormatVertex(p Point, height int) string {
	if p.Col < 0 || p.Col >= len(columnLabels) {
		return "?" + strconv.Itoa(height-p.Row)
	}
	return string(columnLabels[p.Col]) + strconv.Itoa(height-p.Row)
}

// ColumnLabel returns the letter naming column col.
func ColumnLabel(col int) byte {
	return columnLabels[col]
}

func foldWidth(s string) string {
	return width.Fold.String(s)
}
