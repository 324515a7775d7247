package goban

import (
	"bufio"
	"io"
	"strconv"
)

var symbols = map[Color]byte{
	NoColor: '.',
	Black:   'x',
	White:   'o',
}

// Display writes a plain rendering of the live board: a header of
// column letters, then one line per row prefixed by its row number.
func (g *Game) Display(w io.Writer) error {
	b := g.board
	pad := len(strconv.Itoa(b.height))
	out := bufio.NewWriter(w)
	writePad(out, pad)
	for c := 0; c < b.width; c++ {
		out.WriteByte(' ')
		out.WriteByte(ColumnLabel(c))
	}
	out.WriteByte('\n')
	for r := 0; r < b.height; r++ {
		label := strconv.Itoa(b.height - r)
		writePad(out, pad-len(label))
		out.WriteString(label)
		for c := 0; c < b.width; c++ {
			out.WriteByte(' ')
			out.WriteByte(symbols[b.rows[r][c]])
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}

func writePad(w *bufio.Writer, n int) {
	for i := 0; i < n; i++ {
		w.WriteByte(' ')
	}
}
