package kociemba

import (
	"strings"
	"testing"
	"time"
)

func init() {
	Setup()
}

// axisIndexOf returns the axis constant for a face letter (U R F D L B).
func axisIndexOf(letter byte) int {
	for i, n := range axisNames {
		if n[0] == letter {
			return i
		}
	}
	panic("unknown axis letter")
}

// scramble builds a CubieCube by applying a space-separated sequence of
// moves (e.g. "R U R' U'") to the solved cube, using the raw quarter-turn
// generators directly rather than going through Solve's move tables.
func scramble(t *testing.T, seq string) *CubieCube {
	t.Helper()
	c := solvedCube()
	if strings.TrimSpace(seq) == "" {
		return c
	}
	for _, tok := range strings.Fields(seq) {
		axis := axisIndexOf(tok[0])
		turns := 1
		if len(tok) > 1 {
			switch tok[1] {
			case '2':
				turns = 2
			case '\'':
				turns = 3
			default:
				t.Fatalf("unrecognized move token %q", tok)
			}
		}
		for i := 0; i < turns; i++ {
			c = multiply(c, moveCube[axis])
		}
	}
	return c
}

// applySolution replays a solve() solution string against c and reports
// whether the result is the solved cube.
func applySolution(t *testing.T, c *CubieCube, solution string) bool {
	t.Helper()
	result := c.Clone()
	if strings.TrimSpace(solution) == "" {
		return *result == *solvedCube()
	}
	for _, tok := range strings.Fields(solution) {
		if tok == "." {
			continue
		}
		axis := axisIndexOf(tok[0])
		turns := 1
		if len(tok) > 1 {
			switch tok[1] {
			case '2':
				turns = 2
			case '\'':
				turns = 3
			default:
				t.Fatalf("unrecognized solution token %q", tok)
			}
		}
		for i := 0; i < turns; i++ {
			result = multiply(result, moveCube[axis])
		}
	}
	return *result == *solvedCube()
}

func TestSolveSolvedCubeReturnsEmptySolution(t *testing.T) {
	solution, err := Solve(solvedCube(), 24, 10*time.Second, false)
	if err != nil {
		t.Fatalf("Solve on solved cube returned error: %v", err)
	}
	if solution != "" {
		t.Errorf("Solve on solved cube = %q, want empty string", solution)
	}
}

func TestSolveSingleQuarterTurn(t *testing.T) {
	c := scramble(t, "R")
	solution, err := Solve(c, 24, 10*time.Second, false)
	if err != nil {
		t.Fatalf("Solve(R) returned error: %v", err)
	}
	moves := strings.Fields(solution)
	if len(moves) != 1 {
		t.Errorf("Solve(R) = %q, want a single-move solution", solution)
	}
	if !applySolution(t, c, solution) {
		t.Errorf("Solve(R) solution %q does not solve the cube", solution)
	}
}

func TestSolveSuperflipAdjacent(t *testing.T) {
	// Identity permutation, every edge flipped: sum(EO) = 12, a multiple
	// of 2, so this is a legal state distinct from the solved cube.
	c := solvedCube()
	for i := range c.EO {
		c.EO[i] = 1
	}
	if err := c.Verify(); err != nil {
		t.Fatalf("superflip-adjacent cube failed Verify: %v", err)
	}

	solution, err := Solve(c, 24, 15*time.Second, false)
	if err != nil {
		t.Fatalf("Solve(superflip-adjacent) returned error: %v", err)
	}
	moves := strings.Fields(solution)
	if len(moves) > 24 {
		t.Errorf("Solve(superflip-adjacent) took %d moves, want <= 24", len(moves))
	}
	if !applySolution(t, c, solution) {
		t.Errorf("Solve(superflip-adjacent) solution %q does not solve the cube", solution)
	}
}

func TestSolveFixedRegressionScramble(t *testing.T) {
	c := scramble(t, "F U R2 B L' D F2 U' B2 L")
	solution, err := Solve(c, 25, 10*time.Second, false)
	if err != nil {
		t.Fatalf("Solve(regression scramble) returned error: %v", err)
	}
	if !applySolution(t, c, solution) {
		t.Errorf("Solve(regression scramble) solution %q does not solve the cube", solution)
	}
}

func TestSolveTwistParityErrorCode5(t *testing.T) {
	c := solvedCube()
	c.CO[0] = 1
	err := c.Verify()
	if err == nil {
		t.Fatal("expected Verify to reject a lone nonzero corner twist")
	}
	ve, ok := err.(*VerifyError)
	if !ok {
		t.Fatalf("expected *VerifyError, got %T", err)
	}
	if ve.Code() != 5 {
		t.Errorf("Verify code = %d, want 5", ve.Code())
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	c := scramble(t, "R U R' U'")
	before := *c
	if _, err := Solve(c, 24, 10*time.Second, false); err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if *c != before {
		t.Error("Solve mutated its input cube")
	}
}

func TestSolveWithSeparatorMarksPhaseBoundary(t *testing.T) {
	c := scramble(t, "F U R2 B L' D F2 U' B2 L")
	solution, err := Solve(c, 25, 10*time.Second, true)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if !applySolution(t, c, solution) {
		t.Errorf("separator-marked solution %q does not solve the cube", solution)
	}
}

func TestSolveUnreachableMaxDepthReturnsCode7(t *testing.T) {
	c := scramble(t, "F U R2 B L' D F2 U' B2 L")
	_, err := Solve(c, 1, 10*time.Second, false)
	if err == nil {
		t.Fatal("expected an error when maxDepth is too small")
	}
	se, ok := err.(*SolveError)
	if !ok {
		t.Fatalf("expected *SolveError, got %T", err)
	}
	if se.Code() != 7 {
		t.Errorf("SolveError code = %d, want 7", se.Code())
	}
}
