package kociemba

import "sync"

// Move tables: table[coord][move] is the coordinate value reached by
// applying move (0..17) to the state identified by coord. Built once by
// Setup from the six generator cubes in moveCube.
var (
	twistMove    [][18]int16
	flipMove     [][18]int16
	frToBRMove   [][18]int16
	urfToDLFMove [][18]int16
	urToDFMove   [][18]int16
	urToULMove   [][18]int16
	ubToDFMove   [][18]int16

	// mergeURtoULandUBtoDFTable[u][v] is mergeURtoULandUBtoDF(u, v)
	// precomputed, or -1 for an impossible pairing.
	mergeURtoULandUBtoDFTable [][]int16

	// parityMove[p][move] is the corner/edge permutation parity reached
	// from parity p by move: a quarter turn (power 1 or 3) always flips
	// parity, a half turn (power 2) never does.
	parityMove = [2][18]int{
		{1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1},
		{0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
	}

	setupOnce sync.Once
	setupDone bool
)

// Setup builds every move and pruning table. It is idempotent and safe to
// call concurrently; Solve panics if called before Setup has completed at
// least once.
func Setup() {
	setupOnce.Do(func() {
		buildMoveTables()
		buildPruningTables()
		setupDone = true
	})
}

// buildMoveTable fills a coordinate's move table: for every reachable
// coordinate value i, materialize a CubieCube carrying it, multiply by
// each of the six generators three times in a row (recording the
// coordinate after each application), since a quarter turn applied four
// times returns the generator's axis to identity.
func buildMoveTable(n int, set func(*CubieCube, int), get func(*CubieCube) int) [][18]int16 {
	table := make([][18]int16, n)
	a := &CubieCube{}
	for i := 0; i < n; i++ {
		set(a, i)
		for axis := 0; axis < 6; axis++ {
			cube := a
			for power := 0; power < 3; power++ {
				cube = multiply(cube, moveCube[axis])
				table[i][3*axis+power] = int16(get(cube))
			}
		}
	}
	return table
}

func buildMoveTables() {
	twistMove = buildMoveTable(NTwist, setTwist, getTwist)
	flipMove = buildMoveTable(NFlip, setFlip, getFlip)
	frToBRMove = buildMoveTable(NFRtoBR, setFRtoBR, getFRtoBR)
	urfToDLFMove = buildMoveTable(NURFtoDLF, setURFtoDLF, getURFtoDLF)
	urToDFMove = buildMoveTable(NURtoDF, setURtoDF, getURtoDF)
	urToULMove = buildMoveTable(NURtoUL, setURtoUL, getURtoUL)
	ubToDFMove = buildMoveTable(NUBtoDF, setUBtoDF, getUBtoDF)

	mergeURtoULandUBtoDFTable = make([][]int16, NURtoUL)
	for u := 0; u < NURtoUL; u++ {
		row := make([]int16, NUBtoDF)
		for v := 0; v < NUBtoDF; v++ {
			row[v] = int16(mergeURtoULandUBtoDF(u, v))
		}
		mergeURtoULandUBtoDFTable[u] = row
	}

	for axis := 0; axis < 6; axis++ {
		cube := moveCube[axis]
		for power := 0; power < 3; power++ {
			moveCubeFull[3*axis+power] = cube
			cube = multiply(cube, moveCube[axis])
		}
	}
}

// moveCubeFull[move] is the CubieCube representing moveCube[axis] applied
// power+1 times, indexed by move = 3*axis + power.
var moveCubeFull [18]*CubieCube

// sliceOf reduces a full FRtoBR coordinate to its slice-only component
// (which of the 495 UD-slice edge placements it represents, ignoring
// their relative order) used by the slice-based pruning tables.
func sliceOf(frToBR int) int {
	return frToBR / NSlice2
}
