package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"gorm.io/gorm"
)

type transitionLogRepository struct {
	db *gorm.DB
}

func (r *transitionLogRepository) ListByAssetID(ctx context.Context, assetID uuid.UUID) ([]domain.StageTransition, error) {
	var recs []stageTransitionModel
	if err := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("moved_at asc").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]domain.StageTransition, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainTransition(rec))
	}
	return out, nil
}
