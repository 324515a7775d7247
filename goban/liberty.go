package goban

// Group returns the stones of the group containing p together with
// the number of distinct liberties of that group. If p is empty, the
// result is nil and zero.
func (b *Board) Group(p Point) ([]Point, int) {
	c := b.At(p)
	if c == NoColor {
		return nil, 0
	}
	seen := make([]bool, b.height*b.width)
	seen[p.Row*b.width+p.Col] = true
	stones := []Point{p}
	libs := 0
	var buf [4]Point
	for i := 0; i < len(stones); i++ {
		for _, n := range b.neighbours(stones[i], buf[:0]) {
			idx := n.Row*b.width + n.Col
			if seen[idx] {
				continue
			}
			seen[idx] = true
			switch b.At(n) {
			case c:
				stones = append(stones, n)
			case NoColor:
				libs++
			}
		}
	}
	return stones, libs
}

// Liberties counts the liberties of the group containing p.
func (b *Board) Liberties(p Point) int {
	_, libs := b.Group(p)
	return libs
}

// removeGroup clears the group containing p and returns the number of
// stones removed.
func (b *Board) removeGroup(p Point) int {
	c := b.At(p)
	if c == NoColor {
		return 0
	}
	stack := []Point{p}
	b.set(p, NoColor)
	removed := 0
	var buf [4]Point
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		removed++
		for _, n := range b.neighbours(cur, buf[:0]) {
			if b.At(n) == c {
				b.set(n, NoColor)
				stack = append(stack, n)
			}
		}
	}
	return removed
}
