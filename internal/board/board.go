// Package board keeps a client-side projection of the onboarding pipeline.
// Card moves are applied optimistically: the card renders in its target
// column while the server decides, then the projection is confirmed or
// rolled back from the server's answer.
package board

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
)

var (
	ErrUnknownCard  = errors.New("unknown card")
	ErrMoveInFlight = errors.New("card move already in flight")
)

// Card is one asset as the board renders it.
type Card struct {
	ID     uuid.UUID
	Symbol string
	Stage  domain.Stage
}

// Column is one pipeline stage with its cards in symbol order.
type Column struct {
	Stage domain.Stage
	Cards []Card
}

// Board merges the last server snapshot with any moves still awaiting a
// server verdict. At most one move per card is in flight; further moves of
// that card are refused until the verdict lands.
type Board struct {
	mu            sync.Mutex
	authoritative map[uuid.UUID]Card
	inFlight      map[uuid.UUID]domain.Stage
}

func New() *Board {
	return &Board{
		authoritative: map[uuid.UUID]Card{},
		inFlight:      map[uuid.UUID]domain.Stage{},
	}
}

// Reconcile replaces the authoritative snapshot, keeping in-flight moves
// applied on top. In-flight entries for cards the server no longer knows
// are dropped.
func (b *Board) Reconcile(cards []Card) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.authoritative = make(map[uuid.UUID]Card, len(cards))
	for _, c := range cards {
		b.authoritative[c.ID] = c
	}
	for id := range b.inFlight {
		if _, ok := b.authoritative[id]; !ok {
			delete(b.inFlight, id)
		}
	}
}

// Move applies an optimistic move and locks the card until Confirm or
// Revert is called for it.
func (b *Board) Move(cardID uuid.UUID, target domain.Stage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.authoritative[cardID]; !ok {
		return ErrUnknownCard
	}
	if _, ok := b.inFlight[cardID]; ok {
		return ErrMoveInFlight
	}
	b.inFlight[cardID] = target
	return nil
}

// Confirm records the server-accepted stage and unlocks the card.
func (b *Board) Confirm(cardID uuid.UUID, confirmed domain.Stage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inFlight, cardID)
	card, ok := b.authoritative[cardID]
	if !ok {
		return
	}
	card.Stage = confirmed
	b.authoritative[cardID] = card
}

// Revert drops the optimistic move; the card falls back to its last
// authoritative stage.
func (b *Board) Revert(cardID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inFlight, cardID)
}

// Locked reports whether a move for the card is awaiting a verdict.
func (b *Board) Locked(cardID uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.inFlight[cardID]
	return ok
}

// StageOf returns the stage the card currently renders in, optimistic
// moves included.
func (b *Board) StageOf(cardID uuid.UUID) (domain.Stage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.authoritative[cardID]
	if !ok {
		return "", false
	}
	if target, moving := b.inFlight[cardID]; moving {
		return target, true
	}
	return card.Stage, true
}

// Columns renders the projection, one column per pipeline stage.
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()
	byStage := map[domain.Stage][]Card{}
	for id, card := range b.authoritative {
		stage := card.Stage
		if target, moving := b.inFlight[id]; moving {
			stage = target
		}
		rendered := card
		rendered.Stage = stage
		byStage[stage] = append(byStage[stage], rendered)
	}
	columns := make([]Column, 0, len(domain.StageOrder))
	for _, stage := range domain.StageOrder {
		cards := byStage[stage]
		sort.Slice(cards, func(i, j int) bool { return cards[i].Symbol < cards[j].Symbol })
		columns = append(columns, Column{Stage: stage, Cards: cards})
	}
	return columns
}
