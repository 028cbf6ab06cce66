package engine

import (
	"strings"

	"nogo/game"

	"github.com/muesli/termenv"
)

var (
	renderProfile = termenv.ColorProfile()
	blackStyle    = termenv.String("●").Foreground(renderProfile.Color("0"))
	whiteStyle    = termenv.String("●").Foreground(renderProfile.Color("15"))
	gridStyle     = termenv.String("·").Foreground(renderProfile.Color("94"))
)

// Render draws the position with colored stones for verbose self-play runs.
// Rows print top-down so the output matches the usual board orientation.
func Render(p game.Position) string {
	var b strings.Builder
	size := p.Size()
	letters := "ABCDEFGHJKLMNOPQRST" // GTP convention: no I column

	for y := size - 1; y >= 0; y-- {
		for x := 0; x < size; x++ {
			switch p.Cell(y*size + x) {
			case game.Black:
				b.WriteString(blackStyle.String())
			case game.White:
				b.WriteString(whiteStyle.String())
			default:
				b.WriteString(gridStyle.String())
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	for x := 0; x < size && x < len(letters); x++ {
		b.WriteByte(letters[x])
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}
