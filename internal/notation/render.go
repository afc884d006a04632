package notation

import (
	"bufio"
	"io"
	"strings"

	"github.com/benbeisheim/minichess-backend/internal/model"
)

const fileHeader = "     a  b  c  d  e  f  g  h"

// Render writes the board diagram, rank 8 first. White pieces are shown as
// " X ", Black pieces as "{X}".
func Render(w io.Writer, b *model.Board) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fileHeader + "\n")
	for y := model.BoardSize - 1; y >= 0; y-- {
		bw.WriteByte(byte('1' + y))
		bw.WriteString(" : ")
		for x := 0; x < model.BoardSize; x++ {
			bw.WriteString(cell(b.Squares[y][x]))
		}
		bw.WriteString("\n")
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// RenderString is Render into a string.
func RenderString(b *model.Board) string {
	var sb strings.Builder
	_ = Render(&sb, b)
	return sb.String()
}

func cell(p *model.Piece) string {
	switch {
	case p == nil:
		return " . "
	case p.Side == model.White:
		return " " + string(p.Type) + " "
	default:
		return "{" + string(p.Type) + "}"
	}
}
