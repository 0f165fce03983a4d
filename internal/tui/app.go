// Package tui renders the onboarding board in the terminal. It follows the
// bubbletea model/update/view loop: key presses become messages, messages
// update the board projection, and the view renders the projection.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vaultscope/asset-onboarding/internal/apiclient"
	"github.com/vaultscope/asset-onboarding/internal/board"
	"github.com/vaultscope/asset-onboarding/internal/domain"
)

const refreshInterval = 5 * time.Second

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.MoveLeft, k.MoveRight, k.Refresh, k.Quit},
	}
}

var defaultKeys = keyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev card")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next card")),
	MoveLeft:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "move card back")),
	MoveRight: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "move card forward")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type refreshMsg struct {
	cards []board.Card
	err   error
}

type moveResultMsg struct {
	card      board.Card
	confirmed domain.Stage
	rejected  string
	err       error
}

type tickMsg time.Time

// App is the bubbletea model. All board state lives in the projection;
// the app only tracks cursor position and the last status line.
type App struct {
	client *apiclient.Client
	board  *board.Board
	keys   keyMap
	help   help.Model

	columnIdx int
	cardIdx   int
	status    string
	width     int
}

func NewApp(client *apiclient.Client) *App {
	return &App{
		client: client,
		board:  board.New(),
		keys:   defaultKeys,
		help:   help.New(),
		status: "loading board...",
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.refreshCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a *App) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshInterval)
		defer cancel()
		assets, err := a.client.ListAssets(ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		cards := make([]board.Card, 0, len(assets))
		for _, asset := range assets {
			id, parseErr := parseCardID(asset.AssetID)
			if parseErr != nil {
				continue
			}
			cards = append(cards, board.Card{
				ID:     id,
				Symbol: asset.AssetSymbol,
				Stage:  domain.Stage(asset.CurrentStage),
			})
		}
		return refreshMsg{cards: cards}
	}
}

func (a *App) moveCmd(card board.Card, target domain.Stage) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshInterval)
		defer cancel()
		resp, err := a.client.MoveStage(ctx, card.ID, target)
		if err != nil {
			var rejected *apiclient.MoveRejectedError
			if errors.As(err, &rejected) {
				return moveResultMsg{card: card, rejected: rejected.Reason}
			}
			return moveResultMsg{card: card, err: err}
		}
		return moveResultMsg{card: card, confirmed: domain.Stage(resp.CurrentStage)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		return a, nil

	case tickMsg:
		return a, tea.Batch(a.refreshCmd(), tickCmd())

	case refreshMsg:
		if msg.err != nil {
			a.status = "refresh failed: " + msg.err.Error()
			return a, nil
		}
		a.board.Reconcile(msg.cards)
		a.clampCursor()
		if a.status == "loading board..." {
			a.status = ""
		}
		return a, nil

	case moveResultMsg:
		switch {
		case msg.err != nil:
			a.board.Revert(msg.card.ID)
			a.status = msg.card.Symbol + ": move failed: " + msg.err.Error()
		case msg.rejected != "":
			a.board.Revert(msg.card.ID)
			a.status = msg.card.Symbol + ": " + msg.rejected
		default:
			a.board.Confirm(msg.card.ID, msg.confirmed)
			a.status = msg.card.Symbol + " moved to " + string(msg.confirmed)
		}
		a.clampCursor()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Left):
		if a.columnIdx > 0 {
			a.columnIdx--
			a.cardIdx = 0
		}
	case key.Matches(msg, a.keys.Right):
		if a.columnIdx < len(domain.StageOrder)-1 {
			a.columnIdx++
			a.cardIdx = 0
		}
	case key.Matches(msg, a.keys.Up):
		if a.cardIdx > 0 {
			a.cardIdx--
		}
	case key.Matches(msg, a.keys.Down):
		a.cardIdx++
		a.clampCursor()
	case key.Matches(msg, a.keys.Refresh):
		return a, a.refreshCmd()
	case key.Matches(msg, a.keys.MoveLeft):
		return a.startMove(-1)
	case key.Matches(msg, a.keys.MoveRight):
		return a.startMove(+1)
	}
	return a, nil
}

// startMove applies the optimistic move and fires the server request. The
// verdict comes back as a moveResultMsg.
func (a *App) startMove(direction int) (tea.Model, tea.Cmd) {
	card, ok := a.selectedCard()
	if !ok {
		return a, nil
	}
	targetIdx := a.columnIdx + direction
	if targetIdx < 0 || targetIdx >= len(domain.StageOrder) {
		return a, nil
	}
	target := domain.StageOrder[targetIdx]
	if err := a.board.Move(card.ID, target); err != nil {
		if errors.Is(err, board.ErrMoveInFlight) {
			a.status = card.Symbol + ": previous move still pending"
		}
		return a, nil
	}
	a.status = card.Symbol + " -> " + string(target) + " (pending)"
	return a, a.moveCmd(card, target)
}

func (a *App) selectedCard() (board.Card, bool) {
	columns := a.board.Columns()
	if a.columnIdx >= len(columns) {
		return board.Card{}, false
	}
	cards := columns[a.columnIdx].Cards
	if a.cardIdx >= len(cards) {
		return board.Card{}, false
	}
	return cards[a.cardIdx], true
}

func (a *App) clampCursor() {
	columns := a.board.Columns()
	if a.columnIdx >= len(columns) {
		a.columnIdx = len(columns) - 1
	}
	cards := columns[a.columnIdx].Cards
	if len(cards) == 0 {
		a.cardIdx = 0
		return
	}
	if a.cardIdx >= len(cards) {
		a.cardIdx = len(cards) - 1
	}
}
