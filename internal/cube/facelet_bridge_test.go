package cube

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/facelet"
	"github.com/ehrlich-b/cube/internal/kociemba"
)

// generatorCube is the cubie-level ground truth for a single clockwise
// quarter turn, transcribed from kociemba's moveCube table (cubiecube.go)
// so this test can check internal/cube's own grid engine against it
// independent of anything internal/facelet or internal/kociemba compute
// on their own.
type generatorCube struct {
	cp [8]int
	co [8]int
	ep [12]int
	eo [12]int
}

var axisGenerators = map[string]generatorCube{
	"U": {
		cp: [8]int{kociemba.Ubr, kociemba.Urf, kociemba.Ufl, kociemba.Ulb, kociemba.Dfr, kociemba.Dlf, kociemba.Dbl, kociemba.Drb},
		co: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]int{kociemba.Ub, kociemba.Ur, kociemba.Uf, kociemba.Ul, kociemba.Dr, kociemba.Df, kociemba.Dl, kociemba.Db, kociemba.Fr, kociemba.Fl, kociemba.Bl, kociemba.Br},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	"R": {
		cp: [8]int{kociemba.Dfr, kociemba.Ufl, kociemba.Ulb, kociemba.Urf, kociemba.Drb, kociemba.Dlf, kociemba.Dbl, kociemba.Ubr},
		co: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [12]int{kociemba.Fr, kociemba.Uf, kociemba.Ul, kociemba.Ub, kociemba.Br, kociemba.Df, kociemba.Dl, kociemba.Db, kociemba.Dr, kociemba.Fl, kociemba.Bl, kociemba.Ur},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	"F": {
		cp: [8]int{kociemba.Ufl, kociemba.Dlf, kociemba.Ulb, kociemba.Ubr, kociemba.Urf, kociemba.Dfr, kociemba.Dbl, kociemba.Drb},
		co: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [12]int{kociemba.Ur, kociemba.Fl, kociemba.Ul, kociemba.Ub, kociemba.Dr, kociemba.Fr, kociemba.Dl, kociemba.Db, kociemba.Uf, kociemba.Df, kociemba.Bl, kociemba.Br},
		eo: [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	"D": {
		cp: [8]int{kociemba.Urf, kociemba.Ufl, kociemba.Ulb, kociemba.Ubr, kociemba.Dlf, kociemba.Dbl, kociemba.Drb, kociemba.Dfr},
		co: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]int{kociemba.Ur, kociemba.Uf, kociemba.Ul, kociemba.Ub, kociemba.Df, kociemba.Dl, kociemba.Db, kociemba.Dr, kociemba.Fr, kociemba.Fl, kociemba.Bl, kociemba.Br},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	"L": {
		cp: [8]int{kociemba.Urf, kociemba.Ulb, kociemba.Dbl, kociemba.Ubr, kociemba.Dfr, kociemba.Ufl, kociemba.Dlf, kociemba.Drb},
		co: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [12]int{kociemba.Ur, kociemba.Uf, kociemba.Bl, kociemba.Ub, kociemba.Dr, kociemba.Df, kociemba.Fl, kociemba.Db, kociemba.Fr, kociemba.Ul, kociemba.Dl, kociemba.Br},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	"B": {
		cp: [8]int{kociemba.Urf, kociemba.Ufl, kociemba.Ubr, kociemba.Drb, kociemba.Dfr, kociemba.Dlf, kociemba.Ulb, kociemba.Dbl},
		co: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [12]int{kociemba.Ur, kociemba.Uf, kociemba.Ul, kociemba.Br, kociemba.Dr, kociemba.Df, kociemba.Dl, kociemba.Bl, kociemba.Fr, kociemba.Fl, kociemba.Ub, kociemba.Db},
		eo: [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// TestFaceletBridgeMatchesKociembaGenerators scrambles a solved grid cube
// with a single clockwise quarter turn via the real ApplyMove engine,
// round-trips it through ToFaceletString and facelet.ToCube, and checks
// the result exactly matches the historical Kociemba generator cube for
// that axis - both permutation and orientation, not just piece identity.
func TestFaceletBridgeMatchesKociembaGenerators(t *testing.T) {
	for _, axis := range []string{"U", "R", "F", "D", "L", "B"} {
		axis := axis
		t.Run(axis, func(t *testing.T) {
			move, err := ParseMove(axis)
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", axis, err)
			}
			c := NewCube(3)
			c.ApplyMove(move)

			facelets, err := c.ToFaceletString()
			if err != nil {
				t.Fatalf("ToFaceletString: %v", err)
			}
			got, err := facelet.ToCube(facelets)
			if err != nil {
				t.Fatalf("facelet.ToCube: %v", err)
			}

			want := axisGenerators[axis]
			if got.CP != want.cp {
				t.Errorf("CP = %v, want %v", got.CP, want.cp)
			}
			if got.CO != want.co {
				t.Errorf("CO = %v, want %v", got.CO, want.co)
			}
			if got.EP != want.ep {
				t.Errorf("EP = %v, want %v", got.EP, want.ep)
			}
			if got.EO != want.eo {
				t.Errorf("EO = %v, want %v", got.EO, want.eo)
			}
		})
	}
}
