package diff

// traceEntry is one visited (D,k) pair in the Myers search.
//
// back is the in-arena index of the predecessor entry. Entries are linked
// by index rather than by pointer so that the path reversal in the script
// builder (walking back to the origin and flipping each link) is a plain
// integer swap, and so the arena can be a single flat slice.
type traceEntry struct {
	d, k       int
	savedX     int
	savedY     int
	isDelete   bool
	index      int
	token      int // offset into newData for inserts; unused for deletes
	back       int
}

// dkIndex maps a (D,k) pair to its unique slot in the arena.
//
// Lays the triangular (D,k) table out in row-major order by D, with k
// stepping by 2 within each row. Slots whose k has the wrong parity for
// D are never touched.
func dkIndex(d, k int) int {
	return (d*d + 2*d + k) / 2
}

// arenaCapacity returns the number of traceEntry slots needed to cover
// every (D,k) pair reachable for inputs of the given lengths.
//
// With Dmax = lenOld+lenNew, the triangular layout of dkIndex holds
// (Dmax+1)(Dmax+2)/2 slots for 0 <= D <= Dmax. This is never smaller
// than the original C source's (lenOld+1)*(lenNew+1) allocation.
func arenaCapacity(lenOld, lenNew int) (int, bool) {
	dMax := lenOld + lenNew
	// dkIndex(dMax, dMax) is the highest slot ever written; the slot
	// count is one more than that.
	n := dMax*dMax + 2*dMax + dMax
	if n < 0 {
		return 0, false // overflowed int
	}
	return n/2 + 1, true
}
