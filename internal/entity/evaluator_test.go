package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = PlayerX
	o = PlayerO
	e = Empty
)

func TestEvaluate(t *testing.T) {
	t.Run("Empty board is in progress", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: evaluating the board
		status := Evaluate(board)

		// Then: the game is still in progress
		assert.Equal(t, TerminalStatus{Outcome: InProgress}, status)
		assert.False(t, status.IsTerminal())
	})

	t.Run("Returns PlayerX with the top row", func(t *testing.T) {
		// Given: a board where X completed the top row
		board := Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		// When: evaluating the board
		status := Evaluate(board)

		// Then: X wins with the top row
		assert.Equal(t, Win, status.Outcome)
		assert.Equal(t, PlayerX, status.Winner)
		assert.Equal(t, []int{0, 1, 2}, status.WinningTriple)
		assert.True(t, status.IsTerminal())
	})

	t.Run("Returns PlayerO with a column", func(t *testing.T) {
		// Given: a board where O completed the middle column
		board := Board{
			x, o, x,
			e, o, e,
			x, o, e,
		}

		// When: evaluating the board
		status := Evaluate(board)

		// Then: O wins with the middle column
		assert.Equal(t, PlayerO, status.Winner)
		assert.Equal(t, []int{1, 4, 7}, status.WinningTriple)
	})

	t.Run("Returns the anti-diagonal", func(t *testing.T) {
		// Given: a board where X completed the anti-diagonal
		board := Board{
			o, o, x,
			e, x, e,
			x, e, e,
		}

		// When: evaluating the board
		status := Evaluate(board)

		// Then: X wins with the anti-diagonal
		assert.Equal(t, []int{2, 4, 6}, status.WinningTriple)
	})

	t.Run("Reports the first matching triple", func(t *testing.T) {
		// Given: a board with both the top row and the left column completed
		board := Board{
			x, x, x,
			x, o, o,
			x, o, o,
		}

		// When: evaluating the board
		status := Evaluate(board)

		// Then: the row is reported because it comes first
		assert.Equal(t, []int{0, 1, 2}, status.WinningTriple)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: X O X / X O O / O X X
		board := Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		// When: evaluating the board
		status := Evaluate(board)

		// Then: the game is a draw
		assert.Equal(t, TerminalStatus{Outcome: Draw}, status)
		assert.True(t, status.IsTerminal())
	})

	t.Run("Win on a full board is not a draw", func(t *testing.T) {
		// Given: a full board where X completed the main diagonal
		board := Board{
			x, o, o,
			o, x, x,
			x, o, x,
		}

		// When: evaluating the board
		status := Evaluate(board)

		// Then: X wins
		require.Equal(t, Win, status.Outcome)
		assert.Equal(t, []int{0, 4, 8}, status.WinningTriple)
	})
}

func TestBoard_With(t *testing.T) {
	// Given: an empty board
	board := Board{}

	// When: placing a mark
	next := board.With(4, PlayerX)

	// Then: the original board is untouched
	assert.Equal(t, Empty, board[4])
	assert.Equal(t, PlayerX, next[4])
}

func TestCellPosition(t *testing.T) {
	row, col := CellPosition(7)

	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)
}

func TestMark_MarshalText(t *testing.T) {
	for mark, want := range map[Mark]string{Empty: "", PlayerX: "X", PlayerO: "O"} {
		text, err := mark.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(text))
	}
}

func TestTerminalStatus_JSON(t *testing.T) {
	// Given: a won status
	status := Evaluate(Board{x, x, x, o, o, e, e, e, e})

	// When: encoding and decoding it
	raw, err := json.Marshal(status)
	require.NoError(t, err)

	var decoded TerminalStatus
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Then: the wire form is readable and round trips
	assert.JSONEq(t, `{"outcome":"win","winner":"X","winning_triple":[0,1,2]}`, string(raw))
	assert.Equal(t, status, decoded)
}

func TestMark_UnmarshalText(t *testing.T) {
	var mark Mark

	require.NoError(t, mark.UnmarshalText([]byte("O")))
	assert.Equal(t, PlayerO, mark)
	require.ErrorIs(t, mark.UnmarshalText([]byte("Z")), ErrUnknownMark)
}
