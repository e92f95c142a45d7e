package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/XirdneL/Connect-4/internal/apperror"
	"github.com/XirdneL/Connect-4/internal/connectfour"
	"github.com/XirdneL/Connect-4/internal/entity"
)

type resultRepo interface {
	Record(ctx context.Context, outcome *entity.Outcome) error
	Tally(ctx context.Context) (*entity.Tally, error)
}

// GameManager owns the board of the current game and whose turn it is.
// It is not safe for concurrent use.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo

	board    *connectfour.Board
	turn     connectfour.Cell
	matchID  string
	finished bool
}

func NewGameManager(logger *slog.Logger, resultRepo resultRepo) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),

		resultRepo: resultRepo,
	}
	manager.NewGame()

	return manager
}

// NewGame - discards the current board and starts over with player one.
func (that *GameManager) NewGame() {
	that.board = connectfour.NewBoard()
	that.turn = connectfour.PlayerOne
	that.matchID = uuid.NewString()
	that.finished = false

	that.logger.Debug("game started", "match", that.matchID)
}

// MakeTurn - drops the current player's cell into column. The turn passes to
// the opponent only when the insert succeeds. A win or a full board ends the game.
func (that *GameManager) MakeTurn(ctx context.Context, column int) error {
	if that.finished {
		return apperror.ErrGameFinished
	}

	player := that.turn
	if err := that.board.Insert(player, column); err != nil {
		return fmt.Errorf("player %d failed to make turn: %w", player.Number(), err)
	}

	that.turn = player.Opponent()

	outcome := entity.NewOutcome(that.matchID, that.board)
	if outcome.IsFinished() {
		that.finishGame(ctx, outcome)
	}

	return nil
}

// Board returns a copy of the current board.
func (that *GameManager) Board() *connectfour.Board {
	board := *that.board
	return &board
}

func (that *GameManager) Turn() connectfour.Cell {
	return that.turn
}

func (that *GameManager) IsOver() bool {
	return that.finished
}

func (that *GameManager) Outcome() *entity.Outcome {
	return entity.NewOutcome(that.matchID, that.board)
}

func (that *GameManager) Tally(ctx context.Context) (*entity.Tally, error) {
	tally, err := that.resultRepo.Tally(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

func (that *GameManager) finishGame(ctx context.Context, outcome *entity.Outcome) {
	log := that.logger.With("method", "finishGame", "match", outcome.MatchID)

	that.finished = true

	if err := that.resultRepo.Record(ctx, outcome); err != nil {
		log.Error("failed to record outcome", "error", err)
		return
	}

	log.Info("game finished", "winner", outcome.Winner, "moves", outcome.Moves)
}
