package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/XirdneL/Connect-4/internal/apperror"
	"github.com/XirdneL/Connect-4/internal/connectfour"
	"github.com/XirdneL/Connect-4/internal/entity"
)

type uGame interface {
	MakeTurn(ctx context.Context, column int) error

	Board() *connectfour.Board
	Turn() connectfour.Cell
	IsOver() bool

	Outcome() *entity.Outcome
	Tally(ctx context.Context) (*entity.Tally, error)
}

// Console plays one game on a terminal: column choices come from in,
// the board and messages go to out.
type Console struct {
	logger *slog.Logger
	uGame  uGame

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, uGame uGame) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		in:     in,
		out:    out,
	}
}

// Run - reads moves until the game is over, then prints the result and the score.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := that.readLines(ctx)

	that.render()

	for !that.uGame.IsOver() {
		that.prompt()

		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			return apperror.ErrInputClosed
		}

		column, err := parseColumn(line)
		if err != nil {
			log.Debug("rejected input", "input", line, "error", err)
			that.printf("Invalid input! Please input a single number.\n")
			continue
		}

		if err = that.uGame.MakeTurn(ctx, column); err != nil {
			log.Debug("rejected turn", "column", column, "error", err)
			that.printf("Cannot insert: %v\n", err)
			continue
		}

		that.render()
	}

	return that.report(ctx)
}

// readLines - feeds input lines to the returned channel, closed on EOF.
func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func (that *Console) report(ctx context.Context) error {
	outcome := that.uGame.Outcome()

	switch outcome.Winner {
	case entity.PlayerOne:
		that.printf("Player 1 wins!\n")
	case entity.PlayerTwo:
		that.printf("Player 2 wins!\n")
	default:
		that.printf("It's a draw!\n")
	}

	tally, err := that.uGame.Tally(ctx)
	if err != nil {
		return fmt.Errorf("failed to report score: %w", err)
	}

	that.printf("Score: Player 1 %d, Player 2 %d, draws %d\n", tally.PlayerOne, tally.PlayerTwo, tally.Draws)

	return nil
}

func (that *Console) render() {
	that.printf("%s", that.uGame.Board().Render())
}

func (that *Console) prompt() {
	turn := that.uGame.Turn()
	that.printf("Player %d (%s), choose a column [0-%d]: ", turn.Number(), turn, connectfour.Width-1)
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func parseColumn(line string) (int, error) {
	column, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a column number", apperror.ErrInvalidInput, line)
	}

	return column, nil
}
