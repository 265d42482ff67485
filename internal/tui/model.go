package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

// Board geometry in terminal cells. Mouse hit-testing depends on it.
const (
	cellWidth    = 7
	cellHeight   = 3
	headerHeight = 5
	historyWidth = 28
)

// clockTick is one second of match time; Match.Tick counts whole seconds.
const clockTick = time.Second

type game interface {
	Click(ctx context.Context, row, col int) error
	Tick()
	Restart()
	ResetAll()
	ToggleTheme() bool
	View() usecase.GameView
}

type tickMsg time.Time

// Model is the bubbletea model of the game window.
type Model struct {
	ctx  context.Context
	game game

	cursorRow int
	cursorCol int
	notice    string
}

func NewModel(ctx context.Context, game game) Model {
	return Model{
		ctx:       ctx,
		game:      game,
		cursorRow: 1,
		cursorCol: 1,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(clockTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.Tick()
		return m, tickCmd()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if row, col, ok := cellAt(msg.X, msg.Y); ok {
			m.cursorRow, m.cursorCol = row, col
			m = m.click(row, col)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.cursorRow = (m.cursorRow + entity.BoardSize - 1) % entity.BoardSize
	case "down", "j":
		m.cursorRow = (m.cursorRow + 1) % entity.BoardSize
	case "left", "h":
		m.cursorCol = (m.cursorCol + entity.BoardSize - 1) % entity.BoardSize
	case "right", "l":
		m.cursorCol = (m.cursorCol + 1) % entity.BoardSize
	case "enter", " ":
		m = m.click(m.cursorRow, m.cursorCol)
	case "r":
		m.game.Restart()
		m.notice = ""
	case "a":
		m.game.ResetAll()
		m.notice = ""
	case "t":
		m.game.ToggleTheme()
	default:
		// 1-9 address the cells in reading order
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
			m.cursorRow, m.cursorCol = (n-1)/entity.BoardSize, (n-1)%entity.BoardSize
			m = m.click(m.cursorRow, m.cursorCol)
		}
	}

	return m, nil
}

func (m Model) click(row, col int) Model {
	m.notice = ""

	err := m.game.Click(m.ctx, row, col)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrCellOccupied):
		m.notice = "That cell is taken."
	case errors.Is(err, apperror.ErrMatchOver):
		m.notice = "Match over: press r to play again."
	default:
		m.notice = "Move ignored."
	}

	return m
}

// cellAt maps a screen position to a board cell.
func cellAt(x, y int) (int, int, bool) {
	y -= headerHeight
	if x < 0 || y < 0 {
		return 0, 0, false
	}

	if x%(cellWidth+1) == cellWidth || y%(cellHeight+1) == cellHeight {
		return 0, 0, false
	}

	row, col := y/(cellHeight+1), x/(cellWidth+1)
	if row >= entity.BoardSize || col >= entity.BoardSize {
		return 0, 0, false
	}

	return row, col, true
}

func (m Model) View() string {
	view := m.game.View()
	theme := ThemeFor(view.Dark)

	header := strings.Join([]string{
		theme.Title.Render("Tic-Tac-Toe"),
		theme.Status.Render(view.Status),
		theme.App.Render(view.Score),
		theme.App.Render(view.Timer),
		"",
	}, "\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderBoard(theme, view),
		"",
		theme.Notice.Render(m.notice),
		theme.Muted.Render("arrows/1-9 move · enter place · r restart · a reset all · t theme · q quit"),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", renderHistory(theme, view.History))
}

func (m Model) renderBoard(theme Theme, view usecase.GameView) string {
	separator := make([]string, entity.BoardSize)
	for i := range separator {
		separator[i] = strings.Repeat("─", cellWidth)
	}
	rowSeparator := theme.Grid.Render(strings.Join(separator, "┼"))
	colSeparator := theme.Grid.Render("│")

	lines := make([]string, 0, entity.BoardSize*(cellHeight+1))
	for row := range entity.BoardSize {
		if row > 0 {
			lines = append(lines, rowSeparator)
		}

		for line := range cellHeight {
			cells := make([]string, entity.BoardSize)
			for col := range entity.BoardSize {
				text := ""
				if line == cellHeight/2 {
					text = string(view.Board.Get(row, col))
				}
				cells[col] = m.cellStyle(theme, view, row, col).Render(text)
			}
			lines = append(lines, strings.Join(cells, colSeparator))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) cellStyle(theme Theme, view usecase.GameView, row, col int) lipgloss.Style {
	style := theme.Cell
	if row == m.cursorRow && col == m.cursorCol && !view.Over {
		style = theme.Cursor
	}

	switch view.Board.Get(row, col) {
	case entity.PlayerX:
		style = style.Foreground(theme.MarkX)
	case entity.PlayerO:
		style = style.Foreground(theme.MarkO)
	case entity.EmptyCell:
	}

	return style
}

func renderHistory(theme Theme, history []string) string {
	body := theme.Muted.Render("No games yet")
	if len(history) > 0 {
		body = theme.App.Render(strings.Join(history, "\n"))
	}

	return theme.History.Render(theme.Title.Render("Game History") + "\n" + body)
}
