package kociemba

import "fmt"

// VerifyError reports why a cube failed group-membership verification
// (error codes 2-6, raised by CubieCube.Verify). Facelet-level code 1
// errors come from package facelet, which uses its own error type with
// the same Code() int method.
type VerifyError struct {
	code    int
	message string
}

func (e *VerifyError) Error() string { return fmt.Sprintf("verify: code %d: %s", e.code, e.message) }

// Code returns the numbered contract code (spec.md §6.2).
func (e *VerifyError) Code() int { return e.code }

// SolveError reports why Solve failed to produce a move sequence (error
// codes 7-8: no solution within maxDepth, or the search timed out).
type SolveError struct {
	code    int
	message string
}

func (e *SolveError) Error() string { return fmt.Sprintf("solve: code %d: %s", e.code, e.message) }

func (e *SolveError) Code() int { return e.code }
