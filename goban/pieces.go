package goban

type Color byte

const (
	NoColor Color = iota
	Black
	White
)

// Empty is the state of a point that holds no stone.
const Empty = NoColor

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "empty"
	default:
		return "bad color"
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// Point is a zero-based board index. Row 0 is the topmost row as
// displayed, i.e. the row labelled with the board height.
type Point struct {
	Row, Col int
}

var directions = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func (p Point) add(d Point) Point {
	return Point{p.Row + d.Row, p.Col + d.Col}
}
