package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmolinar/cubesim"
)

// Sticker styles for the colored net rendering.
var stickerStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	cubesim.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
	cubesim.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
	cubesim.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	cubesim.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cubesim.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
}

func sticker(c cubesim.Color) string {
	return stickerStyles[c].Render(" " + c.String() + " ")
}

// renderNet renders the cube as a colored unfolded net:
//
//	    U
//	L F R B
//	    D
func renderNet(c *cubesim.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 9)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(c.Facelets[cubesim.CubeFaceU][row*3+col]))
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, face := range []cubesim.CubeFace{cubesim.CubeFaceL, cubesim.CubeFaceF, cubesim.CubeFaceR, cubesim.CubeFaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(sticker(c.Facelets[face][row*3+col]))
			}
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(c.Facelets[cubesim.CubeFaceD][row*3+col]))
		}
		b.WriteString("\n")
	}

	return b.String()
}
