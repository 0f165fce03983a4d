package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"github.com/vaultscope/asset-onboarding/internal/ports"
)

const EventTypeStageChanged = "asset.stage_changed"

type stageChangedEvent struct {
	AssetID     string    `json:"asset_id"`
	AssetSymbol string    `json:"asset_symbol"`
	FromStage   string    `json:"from_stage"`
	ToStage     string    `json:"to_stage"`
	MovedBy     string    `json:"moved_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// enqueueStageChanged records the event for the outbox worker. Best effort:
// the transition already committed, so a full outbox must not fail the move.
func (s *Service) enqueueStageChanged(ctx context.Context, asset domain.Asset, from domain.Stage, actorID uuid.UUID) error {
	payload, err := json.Marshal(stageChangedEvent{
		AssetID:     asset.AssetID.String(),
		AssetSymbol: asset.AssetSymbol,
		FromStage:   string(from),
		ToStage:     string(asset.CurrentStage),
		MovedBy:     actorID.String(),
		OccurredAt:  s.nowFn(),
	})
	if err != nil {
		return err
	}
	err = s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:      uuid.New(),
		EventType:    EventTypeStageChanged,
		PartitionKey: asset.AssetID.String(),
		Payload:      payload,
		OccurredAt:   s.nowFn(),
	})
	if err != nil {
		slog.WarnContext(ctx, "stage change event not enqueued",
			"module", "application.events",
			"operation", "enqueue_stage_changed",
			"asset_id", asset.AssetID.String(),
			"error", err,
		)
	}
	return err
}
