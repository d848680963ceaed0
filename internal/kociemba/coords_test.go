package kociemba

import "testing"

// sampleIndices returns a spread of indices across [0, n), including the
// endpoints, without testing every single value.
func sampleIndices(n, step int) []int {
	var out []int
	for i := 0; i < n; i += step {
		out = append(out, i)
	}
	if out[len(out)-1] != n-1 {
		out = append(out, n-1)
	}
	return out
}

func TestTwistRoundTrip(t *testing.T) {
	for _, twist := range sampleIndices(NTwist, 37) {
		var c CubieCube
		setTwist(&c, twist)
		if got := getTwist(&c); got != twist {
			t.Errorf("twist round trip: set %d, got %d", twist, got)
		}
		sum := 0
		for _, o := range c.CO {
			sum += o
		}
		if sum%3 != 0 {
			t.Errorf("twist %d: corner orientation sum %d not a multiple of 3", twist, sum)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for _, flip := range sampleIndices(NFlip, 41) {
		var c CubieCube
		setFlip(&c, flip)
		if got := getFlip(&c); got != flip {
			t.Errorf("flip round trip: set %d, got %d", flip, got)
		}
		sum := 0
		for _, o := range c.EO {
			sum += o
		}
		if sum%2 != 0 {
			t.Errorf("flip %d: edge orientation sum %d not even", flip, sum)
		}
	}
}

func TestFRtoBRRoundTrip(t *testing.T) {
	for _, idx := range sampleIndices(NFRtoBR, 53) {
		var c CubieCube
		setFRtoBR(&c, idx)
		if got := getFRtoBR(&c); got != idx {
			t.Errorf("FRtoBR round trip: set %d, got %d", idx, got)
		}
	}
}

func TestURFtoDLFRoundTrip(t *testing.T) {
	for _, idx := range sampleIndices(NURFtoDLF, 733) {
		var c CubieCube
		setURFtoDLF(&c, idx)
		if got := getURFtoDLF(&c); got != idx {
			t.Errorf("URFtoDLF round trip: set %d, got %d", idx, got)
		}
	}
}

func TestURtoDFRoundTrip(t *testing.T) {
	for _, idx := range sampleIndices(NURtoDF, 733) {
		var c CubieCube
		setURtoDF(&c, idx)
		if got := getURtoDF(&c); got != idx {
			t.Errorf("URtoDF round trip: set %d, got %d", idx, got)
		}
	}
}

func TestURtoULRoundTrip(t *testing.T) {
	for _, idx := range sampleIndices(NURtoUL, 11) {
		var c CubieCube
		setURtoUL(&c, idx)
		if got := getURtoUL(&c); got != idx {
			t.Errorf("URtoUL round trip: set %d, got %d", idx, got)
		}
	}
}

func TestUBtoDFRoundTrip(t *testing.T) {
	for _, idx := range sampleIndices(NUBtoDF, 11) {
		var c CubieCube
		setUBtoDF(&c, idx)
		if got := getUBtoDF(&c); got != idx {
			t.Errorf("UBtoDF round trip: set %d, got %d", idx, got)
		}
	}
}

// TestMergeURtoULandUBtoDFRecoversOriginal checks that splitting a full
// URtoDF coordinate into its two phase-1 half-coordinates and merging them
// back recovers the original index.
func TestMergeURtoULandUBtoDFRecoversOriginal(t *testing.T) {
	for _, idx := range sampleIndices(NURtoDF, 733) {
		var c CubieCube
		setURtoDF(&c, idx)
		urToUL := getURtoUL(&c)
		ubToDF := getUBtoDF(&c)
		if got := mergeURtoULandUBtoDF(urToUL, ubToDF); got != idx {
			t.Errorf("merge round trip: URtoDF %d -> (urToUL=%d, ubToDF=%d) -> %d", idx, urToUL, ubToDF, got)
		}
	}
}

func TestCnkMatchesPascalsTriangle(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{0, 0, 1},
		{4, 0, 1},
		{4, 4, 1},
		{4, 2, 6},
		{8, 4, 70},
		{12, 4, 495},
		{8, 6, 28},
	}
	for _, tc := range cases {
		if got := cnk(tc.n, tc.k); got != tc.want {
			t.Errorf("cnk(%d,%d) = %d, want %d", tc.n, tc.k, got, tc.want)
		}
	}
	if got := cnk(3, 5); got != 0 {
		t.Errorf("cnk(3,5) = %d, want 0 (k>n)", got)
	}
	if got := cnk(3, -1); got != 0 {
		t.Errorf("cnk(3,-1) = %d, want 0 (k<0)", got)
	}
}

func TestCornerAndEdgeParityOfSolvedCubeIsEven(t *testing.T) {
	c := solvedCube()
	if cornerParity(c) != 0 {
		t.Errorf("cornerParity(solved) = %d, want 0", cornerParity(c))
	}
	if edgeParity(c) != 0 {
		t.Errorf("edgeParity(solved) = %d, want 0", edgeParity(c))
	}
}

func TestSwappingTwoCornersFlipsParity(t *testing.T) {
	c := solvedCube()
	c.CP[0], c.CP[1] = c.CP[1], c.CP[0]
	if cornerParity(c) != 1 {
		t.Errorf("cornerParity after a single transposition = %d, want 1", cornerParity(c))
	}
}
