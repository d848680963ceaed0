package kociemba

// Fixed sizes of the six coordinates (spec.md §6.3).
const (
	NTwist     = 2187  // 3^7
	NFlip      = 2048  // 2^11
	NSlice1    = 495   // C(12,4)
	NSlice2    = 24    // 4!
	NFRtoBR    = NSlice1 * NSlice2
	NURFtoDLF  = 20160 // C(8,6)*6!
	NURtoDF    = 20160
	NURtoUL    = 336 // C(8,3)*3!
	NUBtoDF    = 336
	NParity    = 2
)

// cnkTable[n][k] = C(n,k), precomputed by Pascal's triangle.
var cnkTable = func() [13][13]int {
	var t [13][13]int
	for n := 0; n < 13; n++ {
		t[n][0] = 1
		for k := 1; k <= n; k++ {
			t[n][k] = t[n-1][k-1]
			if k <= n-1 {
				t[n][k] += t[n-1][k]
			}
		}
	}
	return t
}()

func cnk(n, k int) int {
	if k < 0 || k > n || n < 0 || n > 12 {
		return 0
	}
	return cnkTable[n][k]
}

// rotateLeft shifts arr[l..r] one step left, wrapping arr[l] to arr[r].
func rotateLeft(arr []int, l, r int) {
	tmp := arr[l]
	for i := l; i < r; i++ {
		arr[i] = arr[i+1]
	}
	arr[r] = tmp
}

// rotateRight shifts arr[l..r] one step right, wrapping arr[r] to arr[l].
func rotateRight(arr []int, l, r int) {
	tmp := arr[r]
	for i := r; i > l; i-- {
		arr[i] = arr[i-1]
	}
	arr[l] = tmp
}

// cornerParity returns the parity (0 even, 1 odd) of the corner
// permutation as the number of inversions mod 2.
func cornerParity(c *CubieCube) int {
	s := 0
	for i := 7; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if c.CP[j] > c.CP[i] {
				s++
			}
		}
	}
	return s % 2
}

// edgeParity returns the parity of the edge permutation.
func edgeParity(c *CubieCube) int {
	s := 0
	for i := 11; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if c.EP[j] > c.EP[i] {
				s++
			}
		}
	}
	return s % 2
}

// getTwist packs the 7 independent corner orientations into [0, NTwist).
func getTwist(c *CubieCube) int {
	s := 0
	for i := 0; i < 7; i++ {
		s = 3*s + c.CO[i]
	}
	return s
}

// setTwist unpacks twist into c.CO, deriving the 8th orientation so the
// sum is a multiple of 3.
func setTwist(c *CubieCube, twist int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		c.CO[i] = twist % 3
		sum += c.CO[i]
		twist /= 3
	}
	c.CO[7] = (3 - sum%3) % 3
}

// getFlip packs the 11 independent edge orientations into [0, NFlip).
func getFlip(c *CubieCube) int {
	s := 0
	for i := 0; i < 11; i++ {
		s = 2*s + c.EO[i]
	}
	return s
}

func setFlip(c *CubieCube, flip int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		c.EO[i] = flip % 2
		sum += c.EO[i]
		flip /= 2
	}
	c.EO[11] = (2 - sum%2) % 2
}

// getFRtoBR encodes the positions and relative order of the four
// UD-slice edges (FR,FL,BL,BR) among all 12 edge slots: a combination
// index a in [0,495) times 24 plus a permutation index b in [0,24).
func getFRtoBR(c *CubieCube) int {
	var edge4 [4]int
	a, x := 0, 0
	for j := 11; j >= 0; j-- {
		if c.EP[j] >= Fr {
			a += cnk(j, x+1)
			edge4[3-x] = c.EP[j]
			x++
		}
	}
	order := [4]int{Fr, Fl, Bl, Br}
	b := 0
	for j := 3; j > 0; j-- {
		k := 0
		for edge4[j] != order[j] {
			rotateLeft(edge4[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 24*a + b
}

func setFRtoBR(c *CubieCube, idx int) {
	sliceEdge := [4]int{Fr, Fl, Bl, Br}
	otherEdge := [8]int{Ur, Uf, Ul, Ub, Dr, Df, Dl, Db}

	b := idx % 24
	a := idx / 24
	for i := range c.EP {
		c.EP[i] = -1
	}

	for i, k := 0, 3; i < 4; i, k = i+1, k-1 {
		r := b % (k + 1)
		b /= k + 1
		for ; r > 0; r-- {
			rotateRight(sliceEdge[:], 0, i)
		}
	}

	x := 3
	for j := 11; j >= 0; j-- {
		if a-cnk(j, x+1) >= 0 {
			c.EP[j] = sliceEdge[3-x]
			a -= cnk(j, x+1)
			x--
		}
	}
	x = 0
	for j := range c.EP {
		if c.EP[j] == -1 {
			c.EP[j] = otherEdge[x]
			x++
		}
	}
	for i := range c.EO {
		c.EO[i] = 0
	}
}

// getURFtoDLF encodes the positions and order of the six corners
// URF,UFL,ULB,UBR,DFR,DLF among all 8 corner slots.
func getURFtoDLF(c *CubieCube) int {
	var perm [6]int
	a, x := 0, 0
	for j := 7; j >= 0; j-- {
		if c.CP[j] <= Dlf {
			a += cnk(j, x+1)
			perm[5-x] = c.CP[j]
			x++
		}
	}
	order := [6]int{Urf, Ufl, Ulb, Ubr, Dfr, Dlf}
	b := 0
	for j := 5; j > 0; j-- {
		k := 0
		for perm[j] != order[j] {
			rotateLeft(perm[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 720*a + b
}

func setURFtoDLF(c *CubieCube, idx int) {
	perm := [6]int{Urf, Ufl, Ulb, Ubr, Dfr, Dlf}
	other := [2]int{Dbl, Drb}

	b := idx % 720
	a := idx / 720
	for i := range c.CP {
		c.CP[i] = -1
	}

	for i, k := 0, 5; i < 6; i, k = i+1, k-1 {
		r := b % (k + 1)
		b /= k + 1
		for ; r > 0; r-- {
			rotateRight(perm[:], 0, i)
		}
	}

	x := 5
	for j := 7; j >= 0; j-- {
		if a-cnk(j, x+1) >= 0 {
			c.CP[j] = perm[5-x]
			a -= cnk(j, x+1)
			x--
		}
	}
	x = 0
	for j := range c.CP {
		if c.CP[j] == -1 {
			c.CP[j] = other[x]
			x++
		}
	}
	for i := range c.CO {
		c.CO[i] = 0
	}
}

// getURtoDF encodes the positions and order of UR,UF,UL,UB,DR,DF among
// edge slots 0..7 (the non-slice slots). Only meaningful when the input
// is a phase-2-reachable cube, i.e. the UD-slice edges already occupy
// slots 8..11.
func getURtoDF(c *CubieCube) int {
	var perm [6]int
	a, x := 0, 0
	for j := 7; j >= 0; j-- {
		if c.EP[j] <= Df {
			a += cnk(j, x+1)
			perm[5-x] = c.EP[j]
			x++
		}
	}
	order := [6]int{Ur, Uf, Ul, Ub, Dr, Df}
	b := 0
	for j := 5; j > 0; j-- {
		k := 0
		for perm[j] != order[j] {
			rotateLeft(perm[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 720*a + b
}

func setURtoDF(c *CubieCube, idx int) {
	perm := [6]int{Ur, Uf, Ul, Ub, Dr, Df}
	other := [2]int{Dl, Db}

	b := idx % 720
	a := idx / 720
	for i := 0; i < 8; i++ {
		c.EP[i] = -1
	}

	for i, k := 0, 5; i < 6; i, k = i+1, k-1 {
		r := b % (k + 1)
		b /= k + 1
		for ; r > 0; r-- {
			rotateRight(perm[:], 0, i)
		}
	}

	x := 5
	for j := 7; j >= 0; j-- {
		if a-cnk(j, x+1) >= 0 {
			c.EP[j] = perm[5-x]
			a -= cnk(j, x+1)
			x--
		}
	}
	x = 0
	for j := 0; j < 8; j++ {
		if c.EP[j] == -1 {
			c.EP[j] = other[x]
			x++
		}
	}
	c.EP[8], c.EP[9], c.EP[10], c.EP[11] = Fr, Fl, Bl, Br
	for i := range c.EO {
		c.EO[i] = 0
	}
}

// getURtoUL and getUBtoDF are the two phase-1 half-coordinates tracked
// only at the phase boundary, once phase 1 has confined UR,UF,UL,UB,DR,DF
// to edge slots 0..7. Each packs the positions and order of 3 of those 6
// edges among the 8 non-slice slots.
func getURtoUL(c *CubieCube) int {
	var perm [3]int
	a, x := 0, 0
	for j := 7; j >= 0; j-- {
		if c.EP[j] <= Ul {
			a += cnk(j, x+1)
			perm[2-x] = c.EP[j]
			x++
		}
	}
	order := [3]int{Ur, Uf, Ul}
	b := 0
	for j := 2; j > 0; j-- {
		k := 0
		for perm[j] != order[j] {
			rotateLeft(perm[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 6*a + b
}

func setURtoUL(c *CubieCube, idx int) {
	perm := [3]int{Ur, Uf, Ul}
	other := [5]int{Ub, Dr, Df, Dl, Db}

	b := idx % 6
	a := idx / 6
	for i := 0; i < 8; i++ {
		c.EP[i] = -1
	}

	for i, k := 0, 2; i < 3; i, k = i+1, k-1 {
		r := b % (k + 1)
		b /= k + 1
		for ; r > 0; r-- {
			rotateRight(perm[:], 0, i)
		}
	}

	x := 2
	for j := 7; j >= 0; j-- {
		if a-cnk(j, x+1) >= 0 {
			c.EP[j] = perm[2-x]
			a -= cnk(j, x+1)
			x--
		}
	}
	x = 0
	for j := 0; j < 8; j++ {
		if c.EP[j] == -1 {
			c.EP[j] = other[x]
			x++
		}
	}
	c.EP[8], c.EP[9], c.EP[10], c.EP[11] = Fr, Fl, Bl, Br
}

func getUBtoDF(c *CubieCube) int {
	var perm [3]int
	a, x := 0, 0
	for j := 7; j >= 0; j-- {
		if c.EP[j] >= Ub && c.EP[j] <= Df {
			a += cnk(j, x+1)
			perm[2-x] = c.EP[j]
			x++
		}
	}
	order := [3]int{Ub, Dr, Df}
	b := 0
	for j := 2; j > 0; j-- {
		k := 0
		for perm[j] != order[j] {
			rotateLeft(perm[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return 6*a + b
}

func setUBtoDF(c *CubieCube, idx int) {
	perm := [3]int{Ub, Dr, Df}
	other := [5]int{Ur, Uf, Ul, Dl, Db}

	b := idx % 6
	a := idx / 6
	for i := 0; i < 8; i++ {
		c.EP[i] = -1
	}

	for i, k := 0, 2; i < 3; i, k = i+1, k-1 {
		r := b % (k + 1)
		b /= k + 1
		for ; r > 0; r-- {
			rotateRight(perm[:], 0, i)
		}
	}

	x := 2
	for j := 7; j >= 0; j-- {
		if a-cnk(j, x+1) >= 0 {
			c.EP[j] = perm[2-x]
			a -= cnk(j, x+1)
			x--
		}
	}
	x = 0
	for j := 0; j < 8; j++ {
		if c.EP[j] == -1 {
			c.EP[j] = other[x]
			x++
		}
	}
	c.EP[8], c.EP[9], c.EP[10], c.EP[11] = Fr, Fl, Bl, Br
}

// mergeURtoULandUBtoDF reconstructs the combined URtoDF coordinate from
// independently-decoded urToUL/ubToDF half-coordinates, returning -1 if
// the two halves claim overlapping edge slots (an impossible pairing).
func mergeURtoULandUBtoDF(urToUL, ubToDF int) int {
	var a, b CubieCube
	setURtoUL(&a, urToUL)
	setUBtoDF(&b, ubToDF)

	urPos, ufPos, ulPos := -1, -1, -1
	ubPos, drPos, dfPos := -1, -1, -1
	for j := 0; j < 8; j++ {
		switch a.EP[j] {
		case Ur:
			urPos = j
		case Uf:
			ufPos = j
		case Ul:
			ulPos = j
		}
		switch b.EP[j] {
		case Ub:
			ubPos = j
		case Dr:
			drPos = j
		case Df:
			dfPos = j
		}
	}

	occupied := map[int]bool{urPos: true, ufPos: true, ulPos: true}
	if occupied[ubPos] || occupied[drPos] || occupied[dfPos] {
		return -1
	}

	var merged CubieCube
	for i := range merged.EP {
		merged.EP[i] = -1
	}
	merged.EP[urPos], merged.EP[ufPos], merged.EP[ulPos] = Ur, Uf, Ul
	merged.EP[ubPos], merged.EP[drPos], merged.EP[dfPos] = Ub, Dr, Df
	filler := [2]int{Dl, Db}
	fi := 0
	for j := 0; j < 8; j++ {
		if merged.EP[j] == -1 {
			merged.EP[j] = filler[fi]
			fi++
		}
	}
	merged.EP[8], merged.EP[9], merged.EP[10], merged.EP[11] = Fr, Fl, Bl, Br
	return getURtoDF(&merged)
}
