package notation

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/benbeisheim/minichess-backend/internal/model"
)

var (
	rankLineRE = regexp.MustCompile(`^ *([1-8]) *:(.*)$`)
	tokenRE    = regexp.MustCompile(`\{*[A-Z.]\}*`)
)

// ReadPattern reads a board diagram in the form Render writes it. Only lines
// starting with a rank number and a colon are used; everything else, such as
// the file header, is ignored. White is to move on the returned board.
func ReadPattern(r io.Reader) (*model.Board, error) {
	b := model.NewEmptyBoard()
	var seen [model.BoardSize]bool

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		m := rankLineRE.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		y := int(m[1][0] - '1')
		if seen[y] {
			return nil, &ParseError{Err: fmt.Errorf("%w: rank %d repeated", ErrBadPattern, y+1), Line: lineNo}
		}
		seen[y] = true

		tokens := tokenRE.FindAllString(m[2], -1)
		if len(tokens) != model.BoardSize {
			return nil, &ParseError{
				Err:  fmt.Errorf("%w: rank %d has %d squares", ErrBadPattern, y+1, len(tokens)),
				Line: lineNo,
				Text: strings.TrimSpace(m[2]),
			}
		}
		for x, tok := range tokens {
			piece, err := parseToken(tok)
			if err != nil {
				return nil, &ParseError{Err: err, Line: lineNo, Text: tok}
			}
			b.Squares[y][x] = piece
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for y, ok := range seen {
		if !ok {
			return nil, &ParseError{Err: fmt.Errorf("%w: rank %d missing", ErrBadPattern, y+1)}
		}
	}
	return b, nil
}

func parseToken(tok string) (*model.Piece, error) {
	side := model.White
	if strings.HasPrefix(tok, "{") {
		side = model.Black
	}
	letter := strings.Trim(tok, "{}")
	if letter == "." {
		return nil, nil
	}
	pt, ok := model.ParsePieceType(letter[0])
	if !ok {
		return nil, fmt.Errorf("%w: unknown piece", ErrBadPattern)
	}
	return model.NewPiece(pt, side), nil
}
