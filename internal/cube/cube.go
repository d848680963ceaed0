package cube

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Face represents a face of the cube
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Up
	Down
)

func (f Face) String() string {
	return []string{"F", "B", "L", "R", "U", "D"}[f]
}

// Color represents a sticker color
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
	// Grey is a wildcard sticker used by CFEN patterns to mean "don't
	// care" - it never appears on a real cube face.
	Grey
)

func (c Color) String() string {
	return []string{"W", "Y", "R", "O", "B", "G", "?"}[c]
}

// colorStyles are muted terminal colors that won't burn eyes, one per
// Color, rendered through lipgloss instead of hand-rolled ANSI escapes.
var colorStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("15")), // Light gray for white
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")),  // Muted yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")),  // Muted red
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")),  // Muted magenta for orange
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")),  // Muted blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")),  // Muted green
	lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // Dark gray for the wildcard
}

// ColoredString returns a muted colored string representation
func (c Color) ColoredString() string {
	return colorStyles[c].Render(c.String())
}

// UnicodeString returns a colored Unicode square representation
func (c Color) UnicodeString() string {
	squares := []string{"â¬œ", "ðŸŸ¨", "ðŸŸ¥", "ðŸŸ§", "ðŸŸ¦", "ðŸŸ©", "â¬›"}
	return squares[c]
}

// FormatSticker renders a single sticker, honoring the color/unicode mode
// combination show.go uses for both normal and highlighted display.
func (c *Cube) FormatSticker(color Color, useColor, useUnicode bool) string {
	switch {
	case useUnicode:
		return color.UnicodeString()
	case useColor:
		return color.ColoredString()
	default:
		return color.String()
	}
}

// UnfoldedString renders the cube as an unfolded cross: Up on top, Down on
// bottom, Left/Front/Right/Back across the middle row.
func (c *Cube) UnfoldedString(useColor, useUnicode bool) string {
	var sb strings.Builder

	var leftPadding string
	if useUnicode {
		leftPadding = strings.Repeat(" ", (c.Size*2)+1)
	} else {
		leftPadding = strings.Repeat(" ", c.Size) + " "
	}

	writeFace := func(face Face) {
		for row := 0; row < c.Size; row++ {
			sb.WriteString(leftPadding)
			for col := 0; col < c.Size; col++ {
				sb.WriteString(c.FormatSticker(c.Faces[face][row][col], useColor, useUnicode))
			}
			sb.WriteString("\n")
		}
	}

	writeFace(Up)
	sb.WriteString("\n")

	middle := [4]Face{Left, Front, Right, Back}
	for row := 0; row < c.Size; row++ {
		for i, face := range middle {
			for col := 0; col < c.Size; col++ {
				sb.WriteString(c.FormatSticker(c.Faces[face][row][col], useColor, useUnicode))
			}
			if i < len(middle)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	writeFace(Down)
	return sb.String()
}

// Cube represents an NxNxN cube
type Cube struct {
	Size  int          // Dimension of the cube (3 for 3x3x3)
	Faces [6][][]Color // Six faces, each Size x Size
}

// NewCube creates a new solved cube of the given size
func NewCube(size int) *Cube {
	if size < 2 {
		size = 2 // Minimum 2x2x2
	}

	cube := &Cube{Size: size}

	// Initialize faces with solved colors
	faceColors := []Color{White, Yellow, Red, Orange, Blue, Green}

	for face := 0; face < 6; face++ {
		cube.Faces[face] = make([][]Color, size)
		for row := 0; row < size; row++ {
			cube.Faces[face][row] = make([]Color, size)
			for col := 0; col < size; col++ {
				cube.Faces[face][row][col] = faceColors[face]
			}
		}
	}

	return cube
}

// IsSolved checks if the cube is in a solved state
func (c *Cube) IsSolved() bool {
	for face := 0; face < 6; face++ {
		firstColor := c.Faces[face][0][0]
		for row := 0; row < c.Size; row++ {
			for col := 0; col < c.Size; col++ {
				if c.Faces[face][row][col] != firstColor {
					return false
				}
			}
		}
	}
	return true
}

// String returns a string representation of the cube
func (c *Cube) String() string {
	return c.StringWithColor(false)
}

// StringWithColor returns a string representation with optional colors
func (c *Cube) StringWithColor(useColor bool) string {
	var sb strings.Builder

	faceNames := []string{"Front", "Back", "Left", "Right", "Up", "Down"}

	for face := 0; face < 6; face++ {
		sb.WriteString(fmt.Sprintf("%s face:\n", faceNames[face]))
		for row := 0; row < c.Size; row++ {
			for col := 0; col < c.Size; col++ {
				if useColor {
					sb.WriteString(c.Faces[face][row][col].ColoredString())
				} else {
					sb.WriteString(c.Faces[face][row][col].String())
				}
				sb.WriteString(" ")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
