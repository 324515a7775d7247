package goban

// Board is a height×width grid of points.
//
// Boards share rows copy-on-write: fork returns a board whose rows
// alias the parent's, and a row is copied the first time the fork
// writes to it. A board that has been frozen is never written again,
// which is what lets history snapshots share storage with each other
// and with the live board.
type Board struct {
	height, width int
	rows          [][]Color
	owned         []bool
	hash          uint64
}

func newBoard(height, width int) *Board {
	blank := make([]Color, width)
	b := &Board{
		height: height,
		width:  width,
		rows:   make([][]Color, height),
	}
	for i := range b.rows {
		b.rows[i] = blank
	}
	return b
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

func (b *Board) At(p Point) Color {
	return b.rows[p.Row][p.Col]
}

// Stones counts the stones of color c on the board.
func (b *Board) Stones(c Color) int {
	n := 0
	for _, row := range b.rows {
		for _, sq := range row {
			if sq == c {
				n++
			}
		}
	}
	return n
}

func (b *Board) fork() *Board {
	next := &Board{
		height: b.height,
		width:  b.width,
		rows:   make([][]Color, b.height),
		owned:  make([]bool, b.height),
		hash:   b.hash,
	}
	copy(next.rows, b.rows)
	return next
}

func (b *Board) freeze() {
	b.owned = nil
}

func (b *Board) set(p Point, c Color) {
	if b.owned == nil {
		panic("goban: write to a frozen board")
	}
	if !b.owned[p.Row] {
		row := make([]Color, b.width)
		copy(row, b.rows[p.Row])
		b.rows[p.Row] = row
		b.owned[p.Row] = true
	}
	if old := b.rows[p.Row][p.Col]; old != NoColor {
		b.hash ^= b.hashAt(p, old)
	}
	if c != NoColor {
		b.hash ^= b.hashAt(p, c)
	}
	b.rows[p.Row][p.Col] = c
}

func (b *Board) neighbours(p Point, out []Point) []Point {
	for _, d := range directions {
		if n := p.add(d); b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Equal reports whether b and o hold the same stones on boards of the
// same dimensions.
func (b *Board) Equal(o *Board) bool {
	if b == o {
		return true
	}
	if b.height != o.height || b.width != o.width || b.hash != o.hash {
		return false
	}
	for i, row := range b.rows {
		orow := o.rows[i]
		if &row[0] == &orow[0] {
			continue
		}
		for j := range row {
			if row[j] != orow[j] {
				return false
			}
		}
	}
	return true
}
