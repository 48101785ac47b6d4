package entity

import "fmt"

// Outcome classifies a board.
type Outcome uint8

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	for _, outcome := range []Outcome{InProgress, Win, Draw} {
		if outcome.String() == string(text) {
			*that = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}

// WinCombos is checked in order; the first completed line is reported.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// TerminalStatus is the result of Evaluate. Winner and WinningTriple are set only for Win.
type TerminalStatus struct {
	Outcome       Outcome `json:"outcome"`
	Winner        Mark    `json:"winner,omitempty"`
	WinningTriple []int   `json:"winning_triple,omitempty"`
}

func (that TerminalStatus) IsTerminal() bool {
	return that.Outcome != InProgress
}

// Evaluate reports whether the board is won, drawn or still in progress.
func Evaluate(board Board) TerminalStatus {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return TerminalStatus{
				Outcome:       Win,
				Winner:        a,
				WinningTriple: []int{combo[0], combo[1], combo[2]},
			}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return TerminalStatus{Outcome: InProgress}
	}

	return TerminalStatus{Outcome: Draw}
}
