package diff

// searchTerminal runs Myers' greedy O(ND) search over old and new,
// recording a trace entry for every visited (D,k) pair.
//
// Returns the arena and the index of the terminal entry — the first
// (D,k) whose snake reaches the end of both old and new. The arena is
// sized once for the worst case and is never grown; there is nothing
// further for the caller to release (Go's GC reclaims it once the
// returned slice is no longer referenced).
func searchTerminal(old, new []byte) ([]traceEntry, int, error) {
	lenOld, lenNew := len(old), len(new)

	capacity, ok := arenaCapacity(lenOld, lenNew)
	if !ok {
		return nil, 0, ErrOutOfMemory
	}

	arena := make([]traceEntry, capacity)

	// Origin seed: SavedY = -1 biases the first insert's Y to 0, landing
	// on new[0]. This entry doubles as its own D=0 predecessor (see
	// Open Questions in SPEC_FULL.md) — its Back field is never read,
	// only overwritten, during path reversal.
	arena[0] = traceEntry{d: 0, k: 0, savedX: 0, savedY: -1}

	maxD := lenOld + lenNew
	for d := 0; d <= maxD; d++ {
		for k := -d; k <= d; k += 2 {
			idx := dkIndex(d, k)
			topIndex := dkIndex(d-1, k+1)
			botIndex := dkIndex(d-1, k-1)

			var x, y, index, token, back int
			var isDelete bool

			// Short-circuit order preserved exactly: the k==-d and
			// k==d guards must prevent reads of the out-of-range
			// predecessor before any comparison touches it.
			if k == -d || (k != d && arena[botIndex].savedX < arena[topIndex].savedX) {
				pred := arena[topIndex]
				x = pred.savedX
				y = pred.savedY + 1
				isDelete = false
				index = x
				token = y - 1
				back = topIndex
			} else {
				pred := arena[botIndex]
				x = pred.savedX + 1
				y = pred.savedY
				isDelete = true
				index = x
				back = botIndex
			}

			// Snake: skip the common prefix on this diagonal.
			for x < lenOld && y < lenNew && old[x] == new[y] {
				x++
				y++
			}

			arena[idx] = traceEntry{
				d: d, k: k,
				savedX: x, savedY: y,
				isDelete: isDelete,
				index:    index,
				token:    token,
				back:     back,
			}

			if x >= lenOld && y >= lenNew {
				return arena, idx, nil
			}
		}
	}

	return nil, 0, ErrInternal
}
