package kociemba

// PatternizeCubes computes X = pattern^-1 * facelets, the cube that
// transforms pattern into facelets under cubie-level multiplication.
//
// This mirrors CubeKit's patternize collaborator: given a scrambled cube
// and a named pattern (e.g. a checkerboard or superflip), it produces the
// single cube that, applied to pattern, yields the scramble - useful for
// matching a scrambled cube against a catalog of named patterns
// regardless of which fixed orientation it was scrambled from. The
// facelet-string-level wrapper lives in package facelet, which owns the
// string<->CubieCube conversion this package deliberately stays ignorant
// of.
func PatternizeCubes(facelets, pattern *CubieCube) *CubieCube {
	return multiply(invCubieCube(pattern), facelets)
}
