package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"github.com/vaultscope/asset-onboarding/internal/ports"
	"gorm.io/gorm"
)

type assetRepository struct {
	db *gorm.DB
}

func (r *assetRepository) Create(ctx context.Context, params ports.CreateAssetParams) (domain.Asset, error) {
	rec := assetModel{
		AssetSymbol:  params.AssetSymbol,
		AssetAddress: params.AssetAddress,
		ChainID:      params.ChainID,
		ProtocolID:   params.ProtocolID,
		Source:       string(params.Source),
		CurrentStage: string(domain.StageRequest),
		OwnerUserID:  params.OwnerUserID,
		CreatedAt:    params.CreatedAt,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return err
		}
		intake := requestFieldsModel{
			AssetID:      rec.AssetID,
			AssetSymbol:  params.AssetSymbol,
			AssetAddress: params.AssetAddress,
			ChainID:      params.ChainID,
			ProtocolID:   params.ProtocolID,
			Source:       string(params.Source),
		}
		return tx.Create(&intake).Error
	})
	if err != nil {
		return domain.Asset{}, err
	}
	return toDomainAsset(rec), nil
}

func (r *assetRepository) GetByID(ctx context.Context, assetID uuid.UUID) (domain.Asset, error) {
	var rec assetModel
	if err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Asset{}, domain.ErrNotFound
		}
		return domain.Asset{}, err
	}
	return toDomainAsset(rec), nil
}

func (r *assetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	var recs []assetModel
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Asset, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainAsset(rec))
	}
	return out, nil
}

// MoveStage commits the stage change and its audit row in one transaction.
// The UPDATE is conditional on the stage the caller read, so a racing
// transition serializes cleanly: whoever commits second sees zero rows
// affected and gets ErrConflict instead of clobbering the winner.
func (r *assetRepository) MoveStage(ctx context.Context, params ports.MoveStageParams) (domain.Asset, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&assetModel{}).
			Where("asset_id = ? AND current_stage = ?", params.AssetID, string(params.From)).
			Update("current_stage", string(params.To))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&assetModel{}).Where("asset_id = ?", params.AssetID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrNotFound
			}
			return domain.ErrConflict
		}
		audit := stageTransitionModel{
			AssetID:       params.AssetID,
			FromStage:     string(params.From),
			ToStage:       string(params.To),
			MovedByUserID: params.MovedByUserID,
			MovedAt:       params.MovedAt,
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return domain.Asset{}, err
	}
	return r.GetByID(ctx, params.AssetID)
}
