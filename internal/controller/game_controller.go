package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/notation"
	"github.com/benbeisheim/minichess-backend/internal/service"
	"github.com/benbeisheim/minichess-backend/internal/ws"
)

type GameController struct {
	gameService   *service.GameService
	defaultStrict bool
}

func NewGameController(gameService *service.GameService, defaultStrict bool) *GameController {
	return &GameController{gameService: gameService, defaultStrict: defaultStrict}
}

type createGameRequest struct {
	Pattern string `json:"pattern"`
	FEN     string `json:"fen"`
	Strict  *bool  `json:"strict"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	opts := service.CreateOptions{Pattern: req.Pattern, FEN: req.FEN, Strict: gc.defaultStrict}
	if req.Strict != nil {
		opts.Strict = *req.Strict
	}

	gameID, err := gc.gameService.CreateGame(playerID, opts)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// MakeMove accepts the human's move. The computer answers asynchronously, so
// the response is 202 with the state right after the human move.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var payload ws.MovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := gc.gameService.HandleMove(gameID, playerID, payload); err != nil {
		return errorResponse(c, err)
	}

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(gameState)
}

func (gc *GameController) Resign(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.Resign(gameID, playerID); err != nil {
		return errorResponse(c, err)
	}
	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) Targets(c *fiber.Ctx) error {
	targets, err := gc.gameService.Targets(c.Params("gameId"), c.Params("square"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"square":  c.Params("square"),
		"targets": targets,
	})
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotYourGame):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrGameOver),
		errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, notation.ErrBadSquare),
		errors.Is(err, notation.ErrBadCommand),
		errors.Is(err, notation.ErrBadPattern),
		errors.Is(err, notation.ErrBadFEN),
		errors.Is(err, model.ErrOffBoard),
		errors.Is(err, model.ErrEmptySquare),
		errors.Is(err, model.ErrNotYourPiece),
		errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
