// Package notation reads and writes the textual forms used around the
// engine: coordinate commands, the board diagram, board pattern files and FEN.
package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/benbeisheim/minichess-backend/internal/model"
)

// Two squares separated by anything that is not itself a coordinate.
var commandRE = regexp.MustCompile(`^([a-h])([1-8])[^a-h1-8]+([a-h])([1-8])`)

// ParseSquare reads an algebraic square such as "e2".
func ParseSquare(s string) (model.Position, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return model.Position{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return model.Position{X: int(s[0] - 'a'), Y: int(s[1] - '1')}, nil
}

// ParseCommand reads a move typed as two squares, e.g. "a2 a4" or "a2-a4".
func ParseCommand(s string) (model.SimpleMove, error) {
	m := commandRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return model.SimpleMove{}, ErrBadCommand
	}
	return model.SimpleMove{
		From: model.Position{X: int(m[1][0] - 'a'), Y: int(m[2][0] - '1')},
		To:   model.Position{X: int(m[3][0] - 'a'), Y: int(m[4][0] - '1')},
	}, nil
}

// FormatMove writes a move as its two squares, e.g. "e7e5".
func FormatMove(m *model.Move) string {
	if m.IsNull() {
		return "--"
	}
	return m.From.String() + m.To.String()
}

// FormatLine writes a move and its anticipated replies.
func FormatLine(m *model.Move) string {
	line := m.Line()
	parts := make([]string, len(line))
	for i, mv := range line {
		parts[i] = FormatMove(mv)
	}
	return strings.Join(parts, " ")
}
