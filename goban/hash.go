package goban

const (
	fnvBasis = 14695981039346656037
	fnvPrime = 1099511628211
)

func hash8(basis uint64, b byte) uint64 {
	return (basis ^ uint64(b)) * fnvPrime
}

func hash64(basis uint64, w uint64) uint64 {
	h := basis
	h = (h ^ (w & 0xff)) * fnvPrime
	h = (h ^ ((w >> 8) & 0xff)) * fnvPrime
	h = (h ^ ((w >> 16) & 0xff)) * fnvPrime
	h = (h ^ (w >> 24)) * fnvPrime
	return h
}

// stoneHash is the contribution of a single stone to a board hash.
// Board hashes are the XOR of the contributions of every stone, so
// placing or removing a stone updates the hash in constant time.
func stoneHash(i int, c Color) uint64 {
	return hash64(hash8(fnvBasis, byte(c)), uint64(i))
}

func (b *Board) hashAt(p Point, c Color) uint64 {
	return stoneHash(p.Row*b.width+p.Col, c)
}

// Hash returns a hash of the stones on the board. Equal boards have
// equal hashes; the converse does not hold.
func (b *Board) Hash() uint64 {
	return b.hash
}
