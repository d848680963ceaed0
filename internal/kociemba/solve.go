package kociemba

import "time"

// NewCube builds a CubieCube from raw corner/edge permutation and
// orientation arrays, verifying it before returning. Callers that already
// trust their input (e.g. package facelet, which derives cp/co/ep/eo from
// a decoded facelet string) can skip straight to &CubieCube{...} and call
// Verify themselves; this constructor exists so malformed raw arrays
// surface immediately rather than being deferred to Solve.
func NewCube(cp, co [8]int, ep, eo [12]int) (*CubieCube, error) {
	c := &CubieCube{CP: cp, CO: co, EP: ep, EO: eo}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// Solve runs the two-phase IDA* search on c and returns a move string per
// the solution grammar (MOVE (WS MOVE)*, with a "." phase separator when
// useSeparator is set). maxDepth bounds the total solution length; the
// search returns a *SolveError with code 7 if no solution is found within
// it, or code 8 if timeOut elapses first. c is not mutated.
//
// Doc register follows CubeKit's cube_solve: "maxDepth" and "timeOut" are
// the same two knobs that function exposed, translated from a raw int
// return code to a Go error.
func Solve(c *CubieCube, maxDepth int, timeOut time.Duration, useSeparator bool) (string, error) {
	if err := c.Verify(); err != nil {
		return "", err
	}
	return solve(c, maxDepth, timeOut, useSeparator)
}
