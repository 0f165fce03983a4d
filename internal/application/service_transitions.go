package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"github.com/vaultscope/asset-onboarding/internal/ports"
)

// MoveAssetStage runs one transition request end to end: load the asset,
// classify the move, evaluate the gate for forward moves, then commit the
// stage change and its audit row atomically. No mutation happens on any
// denial path.
func (s *Service) MoveAssetStage(ctx context.Context, assetID uuid.UUID, target domain.Stage, actorID uuid.UUID) (AssetResponse, error) {
	if !target.Valid() {
		return AssetResponse{}, fmt.Errorf("%w: unknown stage %q", domain.ErrInvalidInput, target)
	}

	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return AssetResponse{}, err
	}
	fromStage := asset.CurrentStage

	if domain.IsForward(fromStage, target) {
		records, gErr := s.gates.GetGateRecords(ctx, assetID)
		if gErr != nil {
			return AssetResponse{}, gErr
		}
		if reason := domain.EvaluateGate(target, records); reason != "" {
			return AssetResponse{}, fmt.Errorf("%w: %s", domain.ErrGateDenied, reason)
		}
	}

	updated, err := s.assets.MoveStage(ctx, ports.MoveStageParams{
		AssetID:       assetID,
		From:          fromStage,
		To:            target,
		MovedByUserID: actorID,
		MovedAt:       s.nowFn(),
	})
	if err != nil {
		return AssetResponse{}, err
	}

	_ = s.enqueueStageChanged(ctx, updated, fromStage, actorID)
	if dErr := s.cache.Delete(ctx, boardCacheKey); dErr != nil {
		slog.WarnContext(ctx, "board cache invalidation failed",
			"module", "application.transitions",
			"operation", "move_asset_stage",
			"error", dErr,
		)
	}
	return toAssetResponse(updated), nil
}

func (s *Service) ListTransitions(ctx context.Context, assetID uuid.UUID) ([]TransitionResponse, error) {
	if _, err := s.assets.GetByID(ctx, assetID); err != nil {
		return nil, err
	}
	log, err := s.transitions.ListByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	out := make([]TransitionResponse, 0, len(log))
	for _, t := range log {
		out = append(out, toTransitionResponse(t))
	}
	return out, nil
}
