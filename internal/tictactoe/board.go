package tictactoe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
)

// WinLength - number of aligned symbols needed to win.
const WinLength = 5

// MaxCoordinate - largest absolute row or column a move may use.
const MaxCoordinate = math.MaxInt32

type Symbol string

const (
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"
)

// Other - returns the opposite symbol.
func (that Symbol) Other() Symbol {
	if that == SymbolX {
		return SymbolO
	}
	return SymbolX
}

func (that Symbol) Valid() bool {
	return that == SymbolX || that == SymbolO
}

// Cell - a coordinate on the unbounded grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) InBounds() bool {
	return inRange(that.Row) && inRange(that.Col)
}

func inRange(v int) bool {
	return v >= -MaxCoordinate && v <= MaxCoordinate
}

// shift - the neighbouring cell in direction (dRow, dCol); ok is false past the edge of the grid.
func (that Cell) shift(dRow, dCol int) (Cell, bool) {
	if !canStep(that.Row, dRow) || !canStep(that.Col, dCol) {
		return Cell{}, false
	}

	return Cell{Row: that.Row + dRow, Col: that.Col + dCol}, true
}

func canStep(v, d int) bool {
	switch {
	case d > 0:
		return v < MaxCoordinate
	case d < 0:
		return v > -MaxCoordinate
	default:
		return true
	}
}

// MarshalText encodes a cell as "row,col" so it can key a JSON object.
func (that Cell) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(that.Row) + "," + strconv.Itoa(that.Col)), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	row, col, ok := strings.Cut(string(text), ",")
	if !ok {
		return fmt.Errorf("invalid cell %q", text)
	}

	r, err := strconv.Atoi(row)
	if err != nil {
		return fmt.Errorf("invalid cell row %q: %w", row, err)
	}

	c, err := strconv.Atoi(col)
	if err != nil {
		return fmt.Errorf("invalid cell col %q: %w", col, err)
	}

	that.Row, that.Col = r, c

	return nil
}

// Result - outcome of an accepted move.
// Winner is set only for a winning move, otherwise Turn holds the next player.
type Result struct {
	Winner  Symbol `json:"winner,omitempty"`
	WinLine []Cell `json:"win_line,omitempty"`
	Turn    Symbol `json:"turn,omitempty"`
}

func (that Result) IsWin() bool {
	return that.Winner != ""
}

// directions through a cell: horizontal, vertical and both diagonals.
var directions = [4]Cell{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// Board - sparse board of an infinite tic-tac-toe game.
type Board struct {
	cells   map[Cell]Symbol
	current Symbol
}

// NewBoard - creates an empty board, X moves first.
func NewBoard() *Board {
	return &Board{
		cells:   make(map[Cell]Symbol),
		current: SymbolX,
	}
}

func (that *Board) CurrentPlayer() Symbol {
	return that.current
}

// Moves - number of occupied cells.
func (that *Board) Moves() int {
	return len(that.cells)
}

func (that *Board) At(cell Cell) (Symbol, bool) {
	symbol, ok := that.cells[cell]
	return symbol, ok
}

// Snapshot - returns a copy of the occupied cells.
func (that *Board) Snapshot() map[Cell]Symbol {
	snapshot := make(map[Cell]Symbol, len(that.cells))
	for cell, symbol := range that.cells {
		snapshot[cell] = symbol
	}

	return snapshot
}

// MakeMoveAs - places symbol at cell, rejecting it when symbol is not the current player.
func (that *Board) MakeMoveAs(symbol Symbol, cell Cell) (Result, error) {
	if symbol != that.current {
		return Result{}, apperror.ErrNotYourTurn
	}

	return that.MakeMove(cell)
}

// MakeMove - places the current player's symbol at cell.
func (that *Board) MakeMove(cell Cell) (Result, error) {
	if !cell.InBounds() {
		return Result{}, fmt.Errorf("cell (%d, %d): %w", cell.Row, cell.Col, apperror.ErrInvalidMove)
	}

	if _, ok := that.cells[cell]; ok {
		return Result{}, fmt.Errorf("cell (%d, %d): %w", cell.Row, cell.Col, apperror.ErrCellOccupied)
	}

	symbol := that.current
	that.cells[cell] = symbol

	if line := that.winLine(cell, symbol); line != nil {
		return Result{Winner: symbol, WinLine: line}, nil
	}

	that.current = symbol.Other()

	return Result{Turn: that.current}, nil
}

// winLine - checks the four lines through cell and returns the winning cells, if any.
func (that *Board) winLine(cell Cell, symbol Symbol) []Cell {
	for _, dir := range directions {
		forward := that.run(cell, symbol, dir.Row, dir.Col)
		backward := that.run(cell, symbol, -dir.Row, -dir.Col)

		if len(forward)+len(backward)-1 < WinLength {
			continue
		}

		// backward starts at cell, so reverse it and skip the duplicate origin in forward.
		line := make([]Cell, 0, len(forward)+len(backward)-1)
		for i := len(backward) - 1; i >= 0; i-- {
			line = append(line, backward[i])
		}
		line = append(line, forward[1:]...)

		return line
	}

	return nil
}

// run - collects consecutive cells holding symbol, starting at cell itself.
func (that *Board) run(cell Cell, symbol Symbol, dRow, dCol int) []Cell {
	var cells []Cell
	for cur, ok := cell, true; ok && that.cells[cur] == symbol; cur, ok = cur.shift(dRow, dCol) {
		cells = append(cells, cur)
	}

	return cells
}
