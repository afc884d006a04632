package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/benbeisheim/minichess-backend/internal/config"
	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/notation"
	"github.com/benbeisheim/minichess-backend/internal/service"
)

const (
	localPlayer = "local"
	testMove    = "a2 a4"
)

// session drives one terminal game: the human types moves for White and the
// computer answers for Black.
type session struct {
	cfg  config.Config
	game *service.Game
	in   *bufio.Scanner
	out  io.Writer
}

func newSession(cfg config.Config, board *model.Board, in io.Reader, out io.Writer) *session {
	return &session{
		cfg:  cfg,
		game: service.NewGame(localPlayer, localPlayer, board, cfg.StrictMoves),
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (s *session) run() error {
	if s.game.ComputerToMove() {
		if over, err := s.computerTurn(); over || err != nil {
			return err
		}
	}

	for {
		s.render()

		played, err := s.humanTurn()
		if err != nil || !played {
			return err
		}
		s.render()

		over, err := s.computerTurn()
		if err != nil {
			return err
		}
		if over || s.cfg.TestMode {
			s.render()
			return nil
		}
	}
}

func (s *session) render() {
	fmt.Fprint(s.out, s.game.GetState().Diagram)
}

// humanTurn prompts until a move is accepted. It reports false when input
// runs out.
func (s *session) humanTurn() (bool, error) {
	for {
		fmt.Fprint(s.out, "Your move: ")

		var input string
		if s.cfg.TestMode {
			input = testMove
			fmt.Fprintln(s.out, input)
		} else {
			if !s.in.Scan() {
				fmt.Fprintln(s.out)
				return false, s.in.Err()
			}
			input = s.in.Text()
		}

		move, err := notation.ParseCommand(input)
		if err != nil {
			fmt.Fprintln(s.out, "? Expected a pair of coordinates")
			continue
		}

		err = s.game.PlayHuman(localPlayer, move)
		switch {
		case err == nil:
			return true, nil
		case s.cfg.TestMode:
			return false, err
		case errors.Is(err, model.ErrEmptySquare), errors.Is(err, model.ErrNotYourPiece):
			fmt.Fprintf(s.out, "Not your piece at %s\n", move.From)
		case errors.Is(err, model.ErrIllegalMove):
			fmt.Fprintf(s.out, "Illegal move %s\n", move)
		default:
			return false, err
		}
	}
}

// computerTurn plays the computer's move and reports whether the game is over.
func (s *session) computerTurn() (bool, error) {
	best, err := s.game.PlayComputer()
	if err != nil {
		return false, err
	}
	if best.IsNull() {
		fmt.Fprintln(s.out, "I have no move.")
		return true, nil
	}

	state := s.game.GetState()
	if s.cfg.ShowLine {
		fmt.Fprintf(s.out, "My move: %s  value %.2f  line %s  (%d nodes, %d ms)\n",
			notation.FormatMove(best), best.Val, notation.FormatLine(best),
			state.Computer.Nodes, state.Computer.TimeMs)
	}
	if state.Status != service.StatusOngoing {
		fmt.Fprintln(s.out, "You have no pieces left.")
		return true, nil
	}
	return false, nil
}
