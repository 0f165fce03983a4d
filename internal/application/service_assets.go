package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"github.com/vaultscope/asset-onboarding/internal/ports"
)

func (s *Service) CreateAsset(ctx context.Context, req CreateAssetRequest) (AssetResponse, error) {
	if err := domain.ValidateAssetSymbol(req.AssetSymbol); err != nil {
		return AssetResponse{}, err
	}
	if err := domain.ValidateAssetAddress(req.AssetAddress); err != nil {
		return AssetResponse{}, err
	}
	if err := domain.ValidateChainID(req.ChainID); err != nil {
		return AssetResponse{}, err
	}
	source, err := domain.ParseAssetSource(req.Source)
	if err != nil {
		return AssetResponse{}, err
	}
	protocolID, err := parseOptionalUUID(req.ProtocolID, "protocol_id")
	if err != nil {
		return AssetResponse{}, err
	}
	ownerID, err := parseOptionalUUID(req.OwnerUserID, "owner_user_id")
	if err != nil {
		return AssetResponse{}, err
	}

	created, err := s.assets.Create(ctx, ports.CreateAssetParams{
		AssetSymbol:  req.AssetSymbol,
		AssetAddress: domain.NormalizeAssetAddress(req.AssetAddress),
		ChainID:      req.ChainID,
		ProtocolID:   protocolID,
		Source:       source,
		OwnerUserID:  ownerID,
		CreatedAt:    s.nowFn(),
	})
	if err != nil {
		return AssetResponse{}, err
	}

	if dErr := s.cache.Delete(ctx, boardCacheKey); dErr != nil {
		slog.WarnContext(ctx, "board cache invalidation failed",
			"module", "application.assets",
			"operation", "create_asset",
			"error", dErr,
		)
	}
	return toAssetResponse(created), nil
}

func (s *Service) GetAsset(ctx context.Context, assetID uuid.UUID) (AssetResponse, error) {
	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return AssetResponse{}, err
	}
	return toAssetResponse(asset), nil
}

func (s *Service) ListAssets(ctx context.Context) ([]AssetResponse, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, toAssetResponse(a))
	}
	return out, nil
}

// BoardSnapshot groups every asset into per-stage columns for the kanban
// client, serving from the redis snapshot when it is still fresh.
func (s *Service) BoardSnapshot(ctx context.Context) (BoardResponse, error) {
	if raw, err := s.cache.Get(ctx, boardCacheKey); err == nil && raw != "" {
		var cached BoardResponse
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
	}

	assets, err := s.assets.List(ctx)
	if err != nil {
		return BoardResponse{}, err
	}
	byStage := make(map[domain.Stage][]AssetResponse, len(domain.StageOrder))
	for _, a := range assets {
		byStage[a.CurrentStage] = append(byStage[a.CurrentStage], toAssetResponse(a))
	}
	board := BoardResponse{Columns: make([]BoardColumn, 0, len(domain.StageOrder))}
	for _, stage := range domain.StageOrder {
		col := BoardColumn{Stage: string(stage), Assets: byStage[stage]}
		if col.Assets == nil {
			col.Assets = []AssetResponse{}
		}
		board.Columns = append(board.Columns, col)
	}

	if raw, jsonErr := json.Marshal(board); jsonErr == nil {
		_ = s.cache.Set(ctx, boardCacheKey, string(raw), s.cfg.BoardCacheTTL)
	}
	return board, nil
}

func parseOptionalUUID(raw *string, field string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a uuid", domain.ErrInvalidInput, field)
	}
	return &parsed, nil
}
