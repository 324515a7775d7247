package goban

import "strings"

// Record describes the ply that produced a history entry.
type Record struct {
	Color Color
	Point Point
	Pass  bool
}

// History is the append-only list of board snapshots, one per
// committed ply. Snapshots are frozen and share unchanged rows.
type History struct {
	boards  []*Board
	records []Record
}

func (h *History) Len() int {
	return len(h.boards)
}

// Board returns the position after ply i+1.
func (h *History) Board(i int) *Board {
	return h.boards[i]
}

func (h *History) Record(i int) Record {
	return h.records[i]
}

func (h *History) Last() *Board {
	if len(h.boards) == 0 {
		return nil
	}
	return h.boards[len(h.boards)-1]
}

func (h *History) push(b *Board, r Record) {
	h.boards = append(h.boards, b)
	h.records = append(h.records, r)
}

// truncate keeps the first n entries.
func (h *History) truncate(n int) {
	for i := n; i < len(h.boards); i++ {
		h.boards[i] = nil
	}
	h.boards = h.boards[:n]
	h.records = h.records[:n]
}

// FormatRecords renders plies as space-separated vertex labels, with
// "pass" for passes.
func FormatRecords(rs []Record, height int) string {
	bits := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.Pass {
			bits = append(bits, "pass")
		} else {
			bits = append(bits, FormatVertex(r.Point, height))
		}
	}
	return strings.Join(bits, " ")
}
