package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// NoMove is the LastMove of the initial entry.
const NoMove = -1

// HistoryEntry is one recorded board and the cell played to reach it.
type HistoryEntry struct {
	Board    entity.Board
	LastMove int
}

func (that HistoryEntry) HasLastMove() bool {
	return that.LastMove != NoMove
}

// GameHistory owns the progression of a single game. It is not safe for concurrent use.
type GameHistory struct {
	entries     []HistoryEntry
	currentMove int
	ascending   bool
}

type Option func(*GameHistory)

// WithAscendingOrder sets the initial display order of the history list.
func WithAscendingOrder(ascending bool) Option {
	return func(that *GameHistory) {
		that.ascending = ascending
	}
}

func NewGameHistory(opts ...Option) *GameHistory {
	history := &GameHistory{
		entries:   []HistoryEntry{{Board: entity.Board{}, LastMove: NoMove}},
		ascending: true,
	}

	for _, opt := range opts {
		opt(history)
	}

	return history
}

// PlayMove places the active player's mark on cell and reports whether the move was accepted.
// Moves on an invalid or occupied cell, or after the game is over, are ignored.
func (that *GameHistory) PlayMove(cell int) bool {
	if !that.canPlay(cell) {
		return false
	}

	current := that.entries[that.currentMove]
	next := HistoryEntry{
		Board:    current.Board.With(cell, that.ActivePlayer()),
		LastMove: cell,
	}

	// a move made after a jump discards the previously visited future
	that.entries = append(that.entries[:that.currentMove+1], next)
	that.currentMove = len(that.entries) - 1

	return true
}

func (that *GameHistory) canPlay(cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	board := that.entries[that.currentMove].Board
	if board[cell] != entity.Empty {
		return false
	}

	return !entity.Evaluate(board).IsTerminal()
}

// JumpTo moves the current pointer without touching recorded entries.
func (that *GameHistory) JumpTo(move int) error {
	if move < 0 || move >= len(that.entries) {
		return fmt.Errorf("%w: move %d, history length %d", apperror.ErrOutOfRange, move, len(that.entries))
	}

	that.currentMove = move

	return nil
}

func (that *GameHistory) ToggleOrder() {
	that.ascending = !that.ascending
}

func (that *GameHistory) IsAscending() bool {
	return that.ascending
}

func (that *GameHistory) CurrentMove() int {
	return that.currentMove
}

func (that *GameHistory) Len() int {
	return len(that.entries)
}

// Entry returns the recorded entry for move. Boards are values, so callers get a copy.
func (that *GameHistory) Entry(move int) (HistoryEntry, bool) {
	if move < 0 || move >= len(that.entries) {
		return HistoryEntry{}, false
	}

	return that.entries[move], true
}

// ActivePlayer is X on even moves and O on odd moves.
func (that *GameHistory) ActivePlayer() entity.Mark {
	if that.currentMove%2 == 0 {
		return entity.PlayerX
	}

	return entity.PlayerO
}
