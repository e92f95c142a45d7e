package connectfour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/XirdneL/Connect-4/internal/apperror"
)

const (
	Width     = 6
	Height    = 7
	WinLength = 4
)

var (
	ErrInvalidCellValue = errors.New("cannot insert empty cell")
	ErrColumnOutOfRange = errors.New("column index out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrInvalidPosition  = errors.New("invalid board position")
)

// axes lists one step along each line a run can follow: horizontal,
// vertical, "/" and "\". Row 0 is the top of the board.
var axes = [4]struct{ dx, dy int }{
	{1, 0},
	{0, 1},
	{1, -1},
	{1, 1},
}

// Board is a Width x Height grid filled column by column from the bottom row.
// Cells are stored row by row, index x + y*Width.
type Board struct {
	cells   [Width * Height]Cell
	ongoing bool
	winner  Cell
	moves   int
}

func NewBoard() *Board {
	return &Board{
		ongoing: true,
		winner:  Empty,
	}
}

// Insert drops cell into column. It lands in the lowest empty row and the
// win check runs from that position. A failed insert never changes the board.
func (that *Board) Insert(cell Cell, column int) error {
	if !that.ongoing {
		return apperror.ErrGameFinished
	}

	if !cell.IsPlayer() {
		return ErrInvalidCellValue
	}

	if column < 0 || column >= Width {
		return fmt.Errorf("%w: cannot insert into column %d, max index is %d", ErrColumnOutOfRange, column, Width-1)
	}

	row := that.landingRow(column)
	if row < 0 {
		return fmt.Errorf("%w: cannot insert into column %d", ErrColumnFull, column)
	}

	that.cells[index(column, row)] = cell
	that.moves++

	that.checkWinningInsert(column, row, cell)

	return nil
}

func (that *Board) IsOngoing() bool {
	return that.ongoing
}

// Winner stays Empty until a winning insert, then holds the winning cell.
func (that *Board) Winner() Cell {
	return that.winner
}

// CellAt returns the content of column x, row y.
func (that *Board) CellAt(x, y int) (Cell, error) {
	if !inBounds(x, y) {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, x, y)
	}

	return that.cells[index(x, y)], nil
}

func (that *Board) IsColumnFull(column int) bool {
	if column < 0 || column >= Width {
		return false
	}

	return that.cells[index(column, 0)] != Empty
}

// IsFull reports whether no column accepts another cell. The board never
// declares a draw by itself; callers combine IsFull with Winner.
func (that *Board) IsFull() bool {
	return that.moves == Width*Height
}

// Moves is the number of successful inserts.
func (that *Board) Moves() int {
	return that.moves
}

// Render returns the column indices followed by one line per row, top row first.
func (that *Board) Render() string {
	var sb strings.Builder

	for x := 0; x < Width; x++ {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			sb.WriteString(that.cells[index(x, y)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	return sb.String()
}

func (that *Board) String() string {
	return that.Render()
}

// landingRow - finds the lowest empty row of the column, -1 when full.
func (that *Board) landingRow(column int) int {
	for y := Height - 1; y >= 0; y-- {
		if that.cells[index(column, y)] == Empty {
			return y
		}
	}

	return -1
}

// checkWinningInsert - measures the run through (x, y) on every axis.
// The anchor counts once, plus the matches found scanning each way.
func (that *Board) checkWinningInsert(x, y int, cell Cell) {
	for _, axis := range axes {
		run := 1 + that.countRun(x, y, axis.dx, axis.dy, cell) + that.countRun(x, y, -axis.dx, -axis.dy, cell)
		if run >= WinLength {
			that.winner = cell
			that.ongoing = false
			return
		}
	}
}

// countRun - counts cells equal to cell stepping away from (x, y), anchor excluded.
func (that *Board) countRun(x, y, dx, dy int, cell Cell) int {
	count := 0
	for cx, cy := x+dx, y+dy; inBounds(cx, cy) && that.cells[index(cx, cy)] == cell; cx, cy = cx+dx, cy+dy {
		count++
	}

	return count
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func index(x, y int) int {
	return x + y*Width
}
