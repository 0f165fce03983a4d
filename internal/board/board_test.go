package board

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
)

func snapshot(cards ...Card) *Board {
	b := New()
	b.Reconcile(cards)
	return b
}

func findColumn(t *testing.T, b *Board, stage domain.Stage) Column {
	t.Helper()
	for _, col := range b.Columns() {
		if col.Stage == stage {
			return col
		}
	}
	t.Fatalf("no column for stage %s", stage)
	return Column{}
}

func TestOptimisticMoveRendersInTargetColumn(t *testing.T) {
	id := uuid.New()
	b := snapshot(Card{ID: id, Symbol: "WETH", Stage: domain.StageRequest})

	if err := b.Move(id, domain.StageBusinessDD); err != nil {
		t.Fatalf("move: %v", err)
	}
	if stage, _ := b.StageOf(id); stage != domain.StageBusinessDD {
		t.Fatalf("expected optimistic stage business_dd, got %s", stage)
	}
	if got := len(findColumn(t, b, domain.StageBusinessDD).Cards); got != 1 {
		t.Fatalf("expected card in target column, got %d", got)
	}
	if got := len(findColumn(t, b, domain.StageRequest).Cards); got != 0 {
		t.Fatalf("expected source column empty, got %d", got)
	}
}

func TestSecondMoveWhileInFlightIsRefused(t *testing.T) {
	id := uuid.New()
	b := snapshot(Card{ID: id, Symbol: "WETH", Stage: domain.StageRequest})

	if err := b.Move(id, domain.StageBusinessDD); err != nil {
		t.Fatalf("first move: %v", err)
	}
	if err := b.Move(id, domain.StageTechDD); !errors.Is(err, ErrMoveInFlight) {
		t.Fatalf("expected ErrMoveInFlight, got %v", err)
	}
	if !b.Locked(id) {
		t.Fatal("card should be locked while move is in flight")
	}
}

func TestConfirmAdoptsServerStageAndUnlocks(t *testing.T) {
	id := uuid.New()
	b := snapshot(Card{ID: id, Symbol: "WETH", Stage: domain.StageRequest})

	if err := b.Move(id, domain.StageBusinessDD); err != nil {
		t.Fatalf("move: %v", err)
	}
	b.Confirm(id, domain.StageBusinessDD)
	if b.Locked(id) {
		t.Fatal("card should be unlocked after confirm")
	}
	if stage, _ := b.StageOf(id); stage != domain.StageBusinessDD {
		t.Fatalf("expected confirmed stage, got %s", stage)
	}
}

func TestRevertRestoresAuthoritativeStage(t *testing.T) {
	id := uuid.New()
	b := snapshot(Card{ID: id, Symbol: "WETH", Stage: domain.StageRequest})

	if err := b.Move(id, domain.StageBusinessDD); err != nil {
		t.Fatalf("move: %v", err)
	}
	b.Revert(id)
	if b.Locked(id) {
		t.Fatal("card should be unlocked after revert")
	}
	if stage, _ := b.StageOf(id); stage != domain.StageRequest {
		t.Fatalf("expected card back in request, got %s", stage)
	}
}

func TestReconcileKeepsInFlightMoveApplied(t *testing.T) {
	id := uuid.New()
	b := snapshot(Card{ID: id, Symbol: "WETH", Stage: domain.StageRequest})

	if err := b.Move(id, domain.StageBusinessDD); err != nil {
		t.Fatalf("move: %v", err)
	}
	// A refresh lands while the verdict is pending.
	b.Reconcile([]Card{{ID: id, Symbol: "WETH", Stage: domain.StageRequest}})
	if stage, _ := b.StageOf(id); stage != domain.StageBusinessDD {
		t.Fatalf("in-flight move should survive reconcile, got %s", stage)
	}
}

func TestReconcileDropsInFlightForRemovedCards(t *testing.T) {
	id := uuid.New()
	b := snapshot(Card{ID: id, Symbol: "WETH", Stage: domain.StageRequest})

	if err := b.Move(id, domain.StageBusinessDD); err != nil {
		t.Fatalf("move: %v", err)
	}
	b.Reconcile(nil)
	if b.Locked(id) {
		t.Fatal("removed card should not stay locked")
	}
	if _, ok := b.StageOf(id); ok {
		t.Fatal("card should be gone after reconcile")
	}
}

func TestMoveUnknownCard(t *testing.T) {
	b := snapshot()
	if err := b.Move(uuid.New(), domain.StageBusinessDD); !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("expected ErrUnknownCard, got %v", err)
	}
}

func TestColumnsCoverEveryStage(t *testing.T) {
	b := snapshot()
	cols := b.Columns()
	if len(cols) != len(domain.StageOrder) {
		t.Fatalf("expected %d columns, got %d", len(domain.StageOrder), len(cols))
	}
	for i, col := range cols {
		if col.Stage != domain.StageOrder[i] {
			t.Fatalf("column %d out of order: %s", i, col.Stage)
		}
	}
}
