package kociemba

import "time"

const maxSearchDepth = 31

// opposite returns the axis on the opposite face, used to canonicalize
// move order (D then U is allowed, U then D is not, and so on).
func opposite(axis int) int { return (axis + 3) % 6 }

// search is the scratch state for one Solve call: parallel arrays
// indexed by ply, mirroring the classic Kociemba search_t layout.
type search struct {
	ax, po                               [maxSearchDepth]int
	flip, twist, slice                   [maxSearchDepth]int
	parity, urfToDLF, frToBR             [maxSearchDepth]int
	urToUL, ubToDF, urToDF               [maxSearchDepth]int
	minDistPhase1, minDistPhase2         [maxSearchDepth]int
	cubes                                [maxSearchDepth]*CubieCube
	deadline                             time.Time
	depthPhase1, depthTotal, maxDepth    int
}

func pruneSliceTwist(twist, slice int) int {
	return getPruning(sliceTwistPrun, twist*NSlice1+slice)
}

func pruneSliceFlip(flip, slice int) int {
	return getPruning(sliceFlipPrun, flip*NSlice1+slice)
}

func pruneURFtoDLFParity(urf, slice2, parity int) int {
	return getPruning(sliceURFtoDLFParityPrun, (urf*NSlice2+slice2)*NParity+parity)
}

func pruneURtoDFParity(urd, slice2, parity int) int {
	return getPruning(sliceURtoDFParityPrun, (urd*NSlice2+slice2)*NParity+parity)
}

// solve runs the two-phase IDA* search for c, returning a move string or
// ("", *SolveError) if none was found within maxDepth or timeOut.
func solve(c *CubieCube, maxDepth int, timeOut time.Duration, useSeparator bool) (string, error) {
	if !setupDone {
		panic("kociemba: Solve called before Setup")
	}
	if maxDepth <= 0 || maxDepth >= maxSearchDepth {
		maxDepth = maxSearchDepth - 1
	}

	s := &search{maxDepth: maxDepth, deadline: time.Now().Add(timeOut)}
	s.cubes[0] = c.Clone()
	s.twist[0] = getTwist(c)
	s.flip[0] = getFlip(c)
	fr := getFRtoBR(c)
	s.slice[0] = sliceOf(fr)
	s.minDistPhase1[0] = maxInt(pruneSliceTwist(s.twist[0], s.slice[0]), pruneSliceFlip(s.flip[0], s.slice[0]))

	for depthPhase1 := s.minDistPhase1[0]; depthPhase1 <= maxDepth; depthPhase1++ {
		s.depthPhase1 = depthPhase1
		if time.Now().After(s.deadline) {
			return "", &SolveError{code: 8, message: "search timed out"}
		}
		if s.phase1(0, depthPhase1) {
			return s.solutionToString(useSeparator), nil
		}
	}
	return "", &SolveError{code: 7, message: "no solution found within maxDepth"}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// phase1 explores move sequences of length exactly depthPhase1, pruned by
// the slice/twist and slice/flip tables, attempting phase 2 whenever a
// prefix lands in the phase-2 subgroup.
func (s *search) phase1(n, depthPhase1 int) bool {
	if n == depthPhase1 {
		if s.minDistPhase1[n] != 0 {
			return false
		}
		if !s.initPhase2(n) {
			return false
		}
		for depthPhase2 := s.minDistPhase2[n]; n+depthPhase2 <= s.maxDepth; depthPhase2++ {
			if s.phase2(n, n+depthPhase2) {
				s.depthTotal = n + depthPhase2
				return true
			}
		}
		return false
	}

	if n%4 == 0 && time.Now().After(s.deadline) {
		return false
	}

	lastAxis := -1
	if n > 0 {
		lastAxis = s.ax[n-1]
	}
	for axis := 0; axis < 6; axis++ {
		if axis == lastAxis || (opposite(axis) == lastAxis && axis > lastAxis) {
			continue
		}
		for power := 0; power < 3; power++ {
			move := 3*axis + power
			s.twist[n+1] = int(twistMove[s.twist[n]][move])
			s.flip[n+1] = int(flipMove[s.flip[n]][move])
			s.slice[n+1] = sliceOf(int(frToBRMove[s.slice[n]*NSlice2][move]))
			s.minDistPhase1[n+1] = maxInt(pruneSliceTwist(s.twist[n+1], s.slice[n+1]), pruneSliceFlip(s.flip[n+1], s.slice[n+1]))
			if s.minDistPhase1[n+1] > depthPhase1-n-1 {
				continue
			}
			s.ax[n] = axis
			s.po[n] = power + 1
			s.cubes[n+1] = multiply(s.cubes[n], moveCubeFull[move])
			if s.phase1(n+1, depthPhase1) {
				return true
			}
		}
	}
	return false
}

// initPhase2 computes the phase-2 starting coordinates from the actual
// CubieCube reached at ply n, merging the two phase-1 half-coordinates
// into URtoDF via the precomputed merge table.
func (s *search) initPhase2(n int) bool {
	cube := s.cubes[n]
	parity := cornerParity(cube)
	urf := getURFtoDLF(cube)
	fr := getFRtoBR(cube)
	slice2 := fr % NSlice2
	urToUL := getURtoUL(cube)
	ubToDF := getUBtoDF(cube)
	urToDF := int(mergeURtoULandUBtoDFTable[urToUL][ubToDF])
	if urToDF < 0 {
		return false
	}

	s.parity[n] = parity
	s.urfToDLF[n] = urf
	s.frToBR[n] = fr
	s.urToUL[n] = urToUL
	s.ubToDF[n] = ubToDF
	s.urToDF[n] = urToDF
	s.minDistPhase2[n] = maxInt(pruneURFtoDLFParity(urf, slice2, parity), pruneURtoDFParity(urToDF, slice2, parity))
	return true
}

// phase2 explores move sequences restricted to <U,D,R2,F2,L2,B2> from ply
// n up to maxTotal, pruned by the corner/edge-permutation parity tables.
func (s *search) phase2(n, maxTotal int) bool {
	if s.minDistPhase2[n] == 0 {
		return true
	}
	if n == maxTotal {
		return false
	}

	lastAxis := -1
	if n > 0 {
		lastAxis = s.ax[n-1]
	}
	for _, move := range phase2Moves {
		axis := move / 3
		if axis == lastAxis || (opposite(axis) == lastAxis && axis > lastAxis) {
			continue
		}
		fr := s.frToBR[n]
		slice2 := fr % NSlice2
		newURF := int(urfToDLFMove[s.urfToDLF[n]][move])
		newURD := int(urToDFMove[s.urToDF[n]][move])
		newFR := int(frToBRMove[slice2][move])
		newSlice2 := newFR % NSlice2
		newParity := parityMove[s.parity[n]][move]
		newMinDist := maxInt(pruneURFtoDLFParity(newURF, newSlice2, newParity), pruneURtoDFParity(newURD, newSlice2, newParity))
		if newMinDist > maxTotal-n-1 {
			continue
		}

		s.ax[n] = axis
		s.po[n] = move%3 + 1
		s.urfToDLF[n+1] = newURF
		s.urToDF[n+1] = newURD
		s.frToBR[n+1] = newFR
		s.parity[n+1] = newParity
		s.minDistPhase2[n+1] = newMinDist

		if s.phase2(n+1, maxTotal) {
			return true
		}
	}
	return false
}

// solutionToString renders ax/po[0:depthTotal] per the solution grammar,
// optionally separating the phase-1 and phase-2 portions with a ".".
func (s *search) solutionToString(useSeparator bool) string {
	out := ""
	for i := 0; i < s.depthTotal; i++ {
		if i > 0 {
			out += " "
		}
		out += moveName(3*s.ax[i] + s.po[i] - 1)
		if useSeparator && i == s.depthPhase1-1 && i != s.depthTotal-1 {
			out += " ."
		}
	}
	return out
}
