// Package facelet bridges the standard 54-character Kociemba facelet
// string (face order U R F D L B, 9 stickers per face read
// left-to-right/top-to-bottom) and the cubie-level representation
// internal/kociemba operates on. This is the "facelet-string parser"
// spec.md names but leaves out of scope for deep specification - it only
// needs to exist so solve/verify have an input format.
package facelet

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/kociemba"
)

const faceLetters = "URFDLB"

// Facelet indices within the 54-char string, one face at a time, 0-8
// within each face in row-major order:
//
//	               U1 U2 U3
//	               U4 U5 U6
//	               U7 U8 U9
//	    L1 L2 L3    F1 F2 F3    R1 R2 R3    B1 B2 B3
//	    L4 L5 L6    F4 F5 F6    R4 R5 R6    B4 B5 B6
//	    L7 L8 L9    F7 F8 F9    R7 R8 R9    B7 B8 B9
//	               D1 D2 D3
//	               D4 D5 D6
//	               D7 D8 D9
const (
	u1 = iota
	u2
	u3
	u4
	u5
	u6
	u7
	u8
	u9
	r1
	r2
	r3
	r4
	r5
	r6
	r7
	r8
	r9
	f1
	f2
	f3
	f4
	f5
	f6
	f7
	f8
	f9
	d1
	d2
	d3
	d4
	d5
	d6
	d7
	d8
	d9
	l1
	l2
	l3
	l4
	l5
	l6
	l7
	l8
	l9
	b1
	b2
	b3
	b4
	b5
	b6
	b7
	b8
	b9
)

// cornerFacelet[c] lists the 3 facelet indices of corner c, in a fixed
// cyclic order (clockwise as viewed from outside the cube).
var cornerFacelet = [8][3]int{
	{u9, r1, f3}, // Urf
	{u7, f1, l3}, // Ufl
	{u1, l1, b3}, // Ulb
	{u3, b1, r3}, // Ubr
	{d3, f9, r7}, // Dfr
	{d1, l9, f7}, // Dlf
	{d7, b9, l7}, // Dbl
	{d9, r9, b7}, // Drb
}

// edgeFacelet[e] lists the 2 facelet indices of edge e.
var edgeFacelet = [12][2]int{
	{u6, r2}, // Ur
	{u8, f2}, // Uf
	{u4, l2}, // Ul
	{u2, b2}, // Ub
	{d6, r8}, // Dr
	{d2, f8}, // Df
	{d4, l8}, // Dl
	{d8, b8}, // Db
	{f6, r4}, // Fr
	{f4, l6}, // Fl
	{b6, l4}, // Bl
	{b4, r6}, // Br
}

func faceOf(facelet int) byte { return faceLetters[facelet/9] }

func cornerColors(c int) [3]byte {
	var out [3]byte
	for k, idx := range cornerFacelet[c] {
		out[k] = faceOf(idx)
	}
	return out
}

func edgeColors(e int) [2]byte {
	var out [2]byte
	for k, idx := range edgeFacelet[e] {
		out[k] = faceOf(idx)
	}
	return out
}

// ToCube decodes a 54-char facelet string into a CubieCube. It returns a
// *facErr with code 1 if the string is not 54 characters, holds a letter
// outside URFDLB, or doesn't contain exactly 9 of each of the 6 letters;
// code 4 if a corner's colors match no corner, code 2 if an edge's colors
// match no edge; and whatever CubieCube.Verify reports for any deeper
// group-membership violation.
func ToCube(facelets string) (*kociemba.CubieCube, error) {
	if len(facelets) != 54 {
		return nil, &facErr{1, fmt.Sprintf("facelet string must be 54 characters, got %d", len(facelets))}
	}

	var count [6]int
	for i := 0; i < 54; i++ {
		idx := indexOfLetter(facelets[i])
		if idx < 0 {
			return nil, &facErr{1, fmt.Sprintf("invalid facelet letter %q at position %d", facelets[i], i)}
		}
		count[idx]++
	}
	for i, n := range count {
		if n != 9 {
			return nil, &facErr{1, fmt.Sprintf("face color %c appears %d times, want 9", faceLetters[i], n)}
		}
	}

	c := &kociemba.CubieCube{}

	for slot := 0; slot < 8; slot++ {
		var observed [3]byte
		for k, idx := range cornerFacelet[slot] {
			observed[k] = facelets[idx]
		}
		piece, rot, ok := matchCorner(observed)
		if !ok {
			return nil, &facErr{4, fmt.Sprintf("corner at slot %d does not match any known corner's colors", slot)}
		}
		c.CP[slot] = piece
		c.CO[slot] = rot
	}

	for slot := 0; slot < 12; slot++ {
		var observed [2]byte
		for k, idx := range edgeFacelet[slot] {
			observed[k] = facelets[idx]
		}
		piece, rot, ok := matchEdge(observed)
		if !ok {
			return nil, &facErr{2, fmt.Sprintf("edge at slot %d does not match any known edge's colors", slot)}
		}
		c.EP[slot] = piece
		c.EO[slot] = rot
	}

	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromCube encodes a CubieCube back into its 54-char facelet string.
func FromCube(c *kociemba.CubieCube) string {
	var out [54]byte
	for slot := 0; slot < 8; slot++ {
		home := cornerColors(c.CP[slot])
		for k, idx := range cornerFacelet[slot] {
			out[idx] = home[(k-c.CO[slot]+3)%3]
		}
	}
	for slot := 0; slot < 12; slot++ {
		home := edgeColors(c.EP[slot])
		for k, idx := range edgeFacelet[slot] {
			out[idx] = home[(k+c.EO[slot])%2]
		}
	}
	for i := 0; i < 6; i++ {
		out[9*i+4] = faceLetters[i]
	}
	return string(out[:])
}

func indexOfLetter(b byte) int {
	for i := 0; i < 6; i++ {
		if faceLetters[i] == b {
			return i
		}
	}
	return -1
}

func sameSet3(a, b [3]byte) bool {
	var count [6]int
	for _, c := range a {
		count[indexOfLetter(c)]++
	}
	for _, c := range b {
		count[indexOfLetter(c)]--
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}
	return true
}

func matchCorner(observed [3]byte) (piece, rot int, ok bool) {
	for p := 0; p < 8; p++ {
		home := cornerColors(p)
		if !sameSet3(observed, home) {
			continue
		}
		for r := 0; r < 3; r++ {
			if observed[0] == home[r] && observed[1] == home[(r+1)%3] && observed[2] == home[(r+2)%3] {
				// CO counts clockwise twist per cornerMultiply's composition
				// rule, which runs opposite the cyclic match offset r above:
				// r is how far home[0] has shifted into observed[0], CO is
				// how far observed has shifted away from home.
				return p, (3 - r) % 3, true
			}
		}
	}
	return 0, 0, false
}

func matchEdge(observed [2]byte) (piece, rot int, ok bool) {
	for p := 0; p < 12; p++ {
		home := edgeColors(p)
		if (observed[0] == home[0] && observed[1] == home[1]) {
			return p, 0, true
		}
		if (observed[0] == home[1] && observed[1] == home[0]) {
			return p, 1, true
		}
	}
	return 0, 0, false
}

// facErr is a minimal kociemba-compatible VerifyError-shaped error for
// facelet-level problems found before CubieCube.Verify runs: code 1 for
// length, letter and color-count errors, code 4 for an unmatched corner,
// code 2 for an unmatched edge.
type facErr struct {
	code int
	msg  string
}

func (e *facErr) Error() string { return e.msg }
func (e *facErr) Code() int     { return e.code }

// Patternize computes the facelet-string-level equivalent of
// kociemba.PatternizeCubes: X = pattern^-1 * facelets.
func Patternize(facelets, pattern string) (string, error) {
	f, err := ToCube(facelets)
	if err != nil {
		return "", err
	}
	p, err := ToCube(pattern)
	if err != nil {
		return "", err
	}
	return FromCube(kociemba.PatternizeCubes(f, p)), nil
}
