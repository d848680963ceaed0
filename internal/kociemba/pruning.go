package kociemba

// Packed 4-bit pruning tables: two values per byte (even index in the low
// nibble, odd index in the high nibble). 0xF marks an index the BFS flood
// fill has not yet reached.
const unvisited = 0xF

var (
	sliceTwistPrun          []byte // index = twist*NSlice1 + slice
	sliceFlipPrun           []byte // index = flip*NSlice1 + slice
	sliceURFtoDLFParityPrun []byte // index = (URFtoDLF*NSlice2+slice2)*2+parity
	sliceURtoDFParityPrun   []byte // index = (URtoDF*NSlice2+slice2)*2+parity
)

// phase2Moves are the moves that keep a cube inside <U,D,R2,F2,L2,B2>,
// indexed move = 3*axis + (power-1).
var phase2Moves = []int{0, 1, 2, 4, 7, 9, 10, 11, 13, 16}

var allMoves = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}

func newPrunTable(n int) []byte {
	t := make([]byte, (n+2)/2)
	for i := range t {
		t[i] = 0xFF
	}
	return t
}

func getPruning(t []byte, idx int) int {
	if idx&1 == 0 {
		return int(t[idx/2] & 0x0F)
	}
	return int(t[idx/2] >> 4)
}

func setPruning(t []byte, idx, val int) {
	if idx&1 == 0 {
		t[idx/2] = (t[idx/2] & 0xF0) | byte(val)
	} else {
		t[idx/2] = (t[idx/2] & 0x0F) | byte(val<<4)
	}
}

// bfsFill fills a pruning table by breadth-first flood from startIdx over
// the given moves, using transition(idx, move) to find a neighboring
// index. Every index in [0,n) must be reachable from startIdx.
func bfsFill(n int, moves []int, startIdx int, transition func(idx, move int) int) []byte {
	t := newPrunTable(n)
	setPruning(t, startIdx, 0)
	filled := 1
	for depth := 0; filled < n; depth++ {
		for idx := 0; idx < n; idx++ {
			if getPruning(t, idx) != depth {
				continue
			}
			for _, m := range moves {
				nxt := transition(idx, m)
				if getPruning(t, nxt) == unvisited {
					setPruning(t, nxt, depth+1)
					filled++
				}
			}
		}
	}
	return t
}

// solvedSeed computes the coordinate values of the identity cube, used to
// seed each pruning table's BFS (the combinatorial-index schemes above do
// not number the identity cube as 0, so the seed must be computed, not
// assumed).
func solvedSeed() (twist0, flip0, slice0, urf0, urd0, slice2_0, parity0 int) {
	solved := solvedCube()
	twist0 = getTwist(solved)
	flip0 = getFlip(solved)
	fr0 := getFRtoBR(solved)
	slice0 = sliceOf(fr0)
	urf0 = getURFtoDLF(solved)
	urd0 = getURtoDF(solved)
	slice2_0 = fr0 % NSlice2
	parity0 = cornerParity(solved)
	return
}

func buildPruningTables() {
	twist0, flip0, slice0, urf0, urd0, slice2_0, parity0 := solvedSeed()

	sliceTwistPrun = bfsFill(NTwist*NSlice1, allMoves, twist0*NSlice1+slice0, func(idx, m int) int {
		twist := idx / NSlice1
		slice := idx % NSlice1
		newTwist := int(twistMove[twist][m])
		newSlice := sliceOf(int(frToBRMove[slice*NSlice2][m]))
		return newTwist*NSlice1 + newSlice
	})

	sliceFlipPrun = bfsFill(NFlip*NSlice1, allMoves, flip0*NSlice1+slice0, func(idx, m int) int {
		flip := idx / NSlice1
		slice := idx % NSlice1
		newFlip := int(flipMove[flip][m])
		newSlice := sliceOf(int(frToBRMove[slice*NSlice2][m]))
		return newFlip*NSlice1 + newSlice
	})

	sliceURFtoDLFParityPrun = bfsFill(NURFtoDLF*NSlice2*NParity, phase2Moves, (urf0*NSlice2+slice2_0)*NParity+parity0, func(idx, m int) int {
		parity := idx % NParity
		rest := idx / NParity
		slice2 := rest % NSlice2
		urf := rest / NSlice2
		newURF := int(urfToDLFMove[urf][m])
		newSlice2 := int(frToBRMove[slice2][m])
		newParity := parityMove[parity][m]
		return (newURF*NSlice2+newSlice2)*NParity + newParity
	})

	sliceURtoDFParityPrun = bfsFill(NURtoDF*NSlice2*NParity, phase2Moves, (urd0*NSlice2+slice2_0)*NParity+parity0, func(idx, m int) int {
		parity := idx % NParity
		rest := idx / NParity
		slice2 := rest % NSlice2
		urd := rest / NSlice2
		newURD := int(urToDFMove[urd][m])
		newSlice2 := int(frToBRMove[slice2][m])
		newParity := parityMove[parity][m]
		return (newURD*NSlice2+newSlice2)*NParity + newParity
	})
}
