package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type focus int

const (
	focusBoard focus = iota
	focusHistory
)

var (
	cellStyle     = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	cursorStyle   = cellStyle.Reverse(true)
	winStyle      = cellStyle.Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	currentStyle  = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Run plays a local game in the terminal until the user quits.
func Run(ascending bool) error {
	p := tea.NewProgram(NewModel(ascending), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

type Model struct {
	history   *tictactoe.GameHistory
	ascending bool

	focus         focus
	cursor        int
	historyCursor int
	showHelp      bool
}

func NewModel(ascending bool) Model {
	return Model{
		history:   tictactoe.NewGameHistory(tictactoe.WithAscendingOrder(ascending)),
		ascending: ascending,
		cursor:    4,
	}
}

// History exposes the game being played.
func (m Model) History() *tictactoe.GameHistory {
	return m.history
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "tab":
		if m.focus == focusBoard {
			m.focus = focusHistory
			m.historyCursor = 0
		} else {
			m.focus = focusBoard
		}
		return m, nil
	case "o":
		m.history.ToggleOrder()
		return m, nil
	case "n":
		m.history = tictactoe.NewGameHistory(tictactoe.WithAscendingOrder(m.ascending))
		m.focus = focusBoard
		return m, nil
	}

	if m.focus == focusHistory {
		return m.updateHistory(key), nil
	}

	return m.updateBoard(key), nil
}

func (m Model) updateBoard(key tea.KeyMsg) Model {
	row, col := entity.CellPosition(m.cursor)

	switch s := key.String(); s {
	case "up", "k":
		row = max(row-1, 0)
	case "down", "j":
		row = min(row+1, entity.RowSize-1)
	case "left", "h":
		col = max(col-1, 0)
	case "right", "l":
		col = min(col+1, entity.RowSize-1)
	case "enter", " ":
		m.history.PlayMove(m.cursor)
		return m
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.cursor = int(s[0] - '1')
		m.history.PlayMove(m.cursor)
		return m
	}

	m.cursor = row*entity.RowSize + col

	return m
}

func (m Model) updateHistory(key tea.KeyMsg) Model {
	items := slices.Collect(m.history.HistoryView())

	switch key.String() {
	case "up", "k":
		m.historyCursor = max(m.historyCursor-1, 0)
	case "down", "j":
		m.historyCursor = min(m.historyCursor+1, len(items)-1)
	case "enter", " ":
		item := items[min(m.historyCursor, len(items)-1)]
		if !item.IsCurrent {
			// items come from HistoryView, so the move is always in range
			_ = m.history.JumpTo(item.Move)
		}
	}

	return m
}

func (m Model) View() string {
	if m.showHelp {
		return helpView()
	}

	view := m.history.CurrentView()

	board := lipgloss.JoinVertical(lipgloss.Left, m.renderRows(view)...)
	left := lipgloss.JoinVertical(lipgloss.Left, statusStyle.Render(view.StatusText), board)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", m.renderHistory()) +
		helpStyle.Render("\ntab switch  o order  n new  ? help  q quit")
}

func (m Model) renderRows(view tictactoe.View) []string {
	rows := make([]string, 0, entity.RowSize)

	for row := range entity.RowSize {
		cells := make([]string, 0, entity.RowSize)
		for col := range entity.RowSize {
			cell := row*entity.RowSize + col
			mark := view.Board[cell].String()
			if mark == "" {
				mark = "·"
			}

			style := cellStyle
			switch {
			case m.focus == focusBoard && cell == m.cursor:
				style = cursorStyle
			case slices.Contains(view.WinningTriple, cell):
				style = winStyle
			}
			cells = append(cells, style.Render(mark))
		}
		rows = append(rows, strings.Join(cells, "│"))
	}

	return rows
}

func (m Model) renderHistory() string {
	var b strings.Builder

	i := 0
	for item := range m.history.HistoryView() {
		prefix := "  "
		style := lipgloss.NewStyle()
		if m.focus == focusHistory && i == m.historyCursor {
			prefix = "> "
			style = selectedStyle
		}
		if item.IsCurrent {
			style = style.Inherit(currentStyle)
		}

		b.WriteString(style.Render(prefix+item.Label) + "\n")
		i++
	}

	return b.String()
}

func helpView() string {
	return "Key bindings:\n" +
		"  ←↓↑→/hjkl  move on the board or history list\n" +
		"  enter/space  play a cell or jump to a move\n" +
		"  1-9  play a cell directly\n" +
		"  tab  switch between board and history\n" +
		"  o  toggle history order\n" +
		"  n  start a new game\n" +
		"  q/esc  quit\n" +
		"  ?  toggle this help"
}
