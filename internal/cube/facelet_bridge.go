package cube

import "fmt"

// colorLetter maps a sticker's Color to the letter of the face it is
// identified with when solved (White started on Front, so a White sticker
// is always "F" no matter which face it currently sits on). This mirrors
// how a real cube's facelet string tracks sticker identity rather than
// current position.
var colorLetter = map[Color]byte{White: 'F', Yellow: 'B', Red: 'L', Orange: 'R', Blue: 'U', Green: 'D'}

// faceletOrder lists the six faces in the order their 9 stickers appear in
// the 54-char facelet string (U-block, R-block, F-block, D-block, L-block,
// B-block), each read row-major.
var faceletOrder = [6]Face{Up, Right, Front, Down, Left, Back}

// ToFaceletString renders a solved-or-scrambled 3x3x3 Cube as the 54-char
// Kociemba facelet string internal/facelet and internal/kociemba consume.
// It only makes sense for 3x3x3 cubes - the two-phase solver has no notion
// of larger puzzles.
func (c *Cube) ToFaceletString() (string, error) {
	if c.Size != 3 {
		return "", fmt.Errorf("facelet conversion requires a 3x3x3 cube, got %dx%dx%d", c.Size, c.Size, c.Size)
	}

	buf := make([]byte, 0, 54)
	for _, face := range faceletOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				letter, ok := colorLetter[c.Faces[face][row][col]]
				if !ok {
					return "", fmt.Errorf("sticker at face %s [%d][%d] has no facelet identity (color %s)",
						face, row, col, c.Faces[face][row][col])
				}
				buf = append(buf, letter)
			}
		}
	}
	return string(buf), nil
}

// FromFaceletString rebuilds a 3x3x3 Cube's sticker layout from a 54-char
// Kociemba facelet string, the inverse of ToFaceletString.
func FromFaceletString(facelets string) (*Cube, error) {
	if len(facelets) != 54 {
		return nil, fmt.Errorf("facelet string must be 54 characters, got %d", len(facelets))
	}

	letterColor := make(map[byte]Color, 6)
	for color, letter := range colorLetter {
		letterColor[letter] = color
	}

	c := NewCube(3)
	i := 0
	for _, face := range faceletOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				color, ok := letterColor[facelets[i]]
				if !ok {
					return nil, fmt.Errorf("invalid facelet letter %q at position %d", facelets[i], i)
				}
				c.Faces[face][row][col] = color
				i++
			}
		}
	}
	return c, nil
}
