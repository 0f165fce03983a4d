package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vaultscope/asset-onboarding/internal/apiclient"
	"github.com/vaultscope/asset-onboarding/internal/board"
	"github.com/vaultscope/asset-onboarding/internal/domain"
)

func newTestApp(cards ...board.Card) *App {
	app := NewApp(apiclient.New("http://localhost:0", "test-token"))
	model, _ := app.Update(refreshMsg{cards: cards})
	return model.(*App)
}

func TestMoveForwardAppliesOptimistically(t *testing.T) {
	card := board.Card{ID: uuid.New(), Symbol: "WETH", Stage: domain.StageRequest}
	app := newTestApp(card)

	model, cmd := app.startMove(+1)
	app = model.(*App)
	if cmd == nil {
		t.Fatal("expected a server request command")
	}
	if stage, _ := app.board.StageOf(card.ID); stage != domain.StageBusinessDD {
		t.Fatalf("expected optimistic business_dd, got %s", stage)
	}
	if !app.board.Locked(card.ID) {
		t.Fatal("card should be locked while the verdict is pending")
	}
}

func TestSecondMoveWhilePendingIsRefused(t *testing.T) {
	card := board.Card{ID: uuid.New(), Symbol: "WETH", Stage: domain.StageRequest}
	app := newTestApp(card)

	model, _ := app.startMove(+1)
	app = model.(*App)
	// Cursor follows the card into the next column.
	app.columnIdx = 1
	app.cardIdx = 0

	model, cmd := app.startMove(+1)
	app = model.(*App)
	if cmd != nil {
		t.Fatal("no server request should fire for a locked card")
	}
	if !strings.Contains(app.status, "pending") {
		t.Fatalf("expected pending status, got %q", app.status)
	}
}

func TestRejectionRevertsAndShowsReason(t *testing.T) {
	card := board.Card{ID: uuid.New(), Symbol: "WETH", Stage: domain.StageRequest}
	app := newTestApp(card)

	model, _ := app.startMove(+1)
	app = model.(*App)
	model, _ = app.Update(moveResultMsg{card: card, rejected: domain.DenyRequestFieldsMissing})
	app = model.(*App)

	if stage, _ := app.board.StageOf(card.ID); stage != domain.StageRequest {
		t.Fatalf("expected card back in request, got %s", stage)
	}
	if !strings.Contains(app.status, domain.DenyRequestFieldsMissing) {
		t.Fatalf("status should carry the server reason, got %q", app.status)
	}
}

func TestConfirmationAdoptsServerStage(t *testing.T) {
	card := board.Card{ID: uuid.New(), Symbol: "WETH", Stage: domain.StageRequest}
	app := newTestApp(card)

	model, _ := app.startMove(+1)
	app = model.(*App)
	model, _ = app.Update(moveResultMsg{card: card, confirmed: domain.StageBusinessDD})
	app = model.(*App)

	if app.board.Locked(card.ID) {
		t.Fatal("card should unlock after confirmation")
	}
	if stage, _ := app.board.StageOf(card.ID); stage != domain.StageBusinessDD {
		t.Fatalf("expected confirmed stage, got %s", stage)
	}
}

func TestViewRendersEveryColumn(t *testing.T) {
	app := newTestApp(board.Card{ID: uuid.New(), Symbol: "WETH", Stage: domain.StageAudit})
	view := app.View()
	for _, title := range stageTitles {
		if !strings.Contains(view, title) {
			t.Fatalf("view missing column %q", title)
		}
	}
	if !strings.Contains(view, "WETH") {
		t.Fatal("view missing card symbol")
	}
}

func TestKeyNavigationStaysInBounds(t *testing.T) {
	app := newTestApp()
	for i := 0; i < len(domain.StageOrder)+3; i++ {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRight})
		app = model.(*App)
	}
	if app.columnIdx != len(domain.StageOrder)-1 {
		t.Fatalf("cursor overran the last column: %d", app.columnIdx)
	}
	for i := 0; i < len(domain.StageOrder)+3; i++ {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyLeft})
		app = model.(*App)
	}
	if app.columnIdx != 0 {
		t.Fatalf("cursor overran the first column: %d", app.columnIdx)
	}
}
