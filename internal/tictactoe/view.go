package tictactoe

import (
	"fmt"
	"iter"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const restartLabel = "Restart game"

// View is the read-only projection of the current move used for rendering.
type View struct {
	Board         entity.Board          `json:"board"`
	ActivePlayer  entity.Mark           `json:"active_player"`
	Status        entity.TerminalStatus `json:"status"`
	StatusText    string                `json:"status_text"`
	WinningTriple []int                 `json:"winning_triple,omitempty"`
	IsTerminal    bool                  `json:"is_terminal"`
	CurrentMove   int                   `json:"current_move"`
}

// MoveItem is one line of the history list. The current item is not a jump target.
type MoveItem struct {
	Move      int    `json:"move"`
	Label     string `json:"label"`
	IsCurrent bool   `json:"is_current"`
}

// CurrentView evaluates the current board on every call.
func (that *GameHistory) CurrentView() View {
	board := that.entries[that.currentMove].Board
	status := entity.Evaluate(board)
	active := that.ActivePlayer()

	return View{
		Board:         board,
		ActivePlayer:  active,
		Status:        status,
		StatusText:    StatusText(status, active),
		WinningTriple: status.WinningTriple,
		IsTerminal:    status.IsTerminal(),
		CurrentMove:   that.currentMove,
	}
}

// HistoryView yields one item per entry in display order. The sequence can be ranged over repeatedly.
func (that *GameHistory) HistoryView() iter.Seq[MoveItem] {
	return func(yield func(MoveItem) bool) {
		total := len(that.entries)
		for i := range total {
			move := i
			if !that.ascending {
				move = total - 1 - i
			}

			if !yield(that.moveItem(move)) {
				return
			}
		}
	}
}

func (that *GameHistory) moveItem(move int) MoveItem {
	item := MoveItem{
		Move:      move,
		IsCurrent: move == that.currentMove,
	}

	switch {
	case move == 0:
		item.Label = restartLabel
	case item.IsCurrent:
		item.Label = fmt.Sprintf("You are on move #%d", move)
	default:
		row, col := entity.CellPosition(that.entries[move].LastMove)
		item.Label = fmt.Sprintf("Go to move #%d (%d, %d)", move, row+1, col+1)
	}

	return item
}

// StatusText renders the user-visible status line.
func StatusText(status entity.TerminalStatus, active entity.Mark) string {
	switch status.Outcome {
	case entity.Win:
		return status.Winner.String() + " wins"
	case entity.Draw:
		return "Draw"
	default:
		return "Next player: " + active.String()
	}
}
