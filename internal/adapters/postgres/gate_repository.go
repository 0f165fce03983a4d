package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"github.com/vaultscope/asset-onboarding/internal/ports"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gateRecordRepository struct {
	db *gorm.DB
}

// GetGateRecords loads the latest snapshot of all four gate records.
// Missing rows become nil fields; only storage failures are errors.
func (r *gateRecordRepository) GetGateRecords(ctx context.Context, assetID uuid.UUID) (domain.GateRecords, error) {
	var out domain.GateRecords

	var rf requestFieldsModel
	switch err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Take(&rf).Error; {
	case err == nil:
		out.Request = toDomainRequestFields(rf)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.GateRecords{}, err
	}

	var bdd businessDDModel
	switch err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Take(&bdd).Error; {
	case err == nil:
		out.BusinessDD = toDomainBusinessDD(bdd)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.GateRecords{}, err
	}

	var tdd techDDModel
	switch err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Take(&tdd).Error; {
	case err == nil:
		out.TechDD = toDomainTechDD(tdd)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.GateRecords{}, err
	}

	var ib integrationBuildModel
	switch err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Take(&ib).Error; {
	case err == nil:
		out.IntegrationBuild = toDomainIntegrationBuild(ib)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.GateRecords{}, err
	}

	return out, nil
}

func (r *gateRecordRepository) UpsertBusinessDD(ctx context.Context, params ports.UpsertBusinessDDParams) (domain.BusinessDD, error) {
	assignments := map[string]any{}
	if params.InterestedCuratorIDs != nil {
		assignments["interested_curator_ids"] = uuidList(*params.InterestedCuratorIDs)
	}
	if params.Notes != nil {
		assignments["notes"] = *params.Notes
	}

	rec := businessDDModel{AssetID: params.AssetID}
	if params.InterestedCuratorIDs != nil {
		rec.InterestedCuratorIDs = uuidList(*params.InterestedCuratorIDs)
	}
	if params.Notes != nil {
		rec.Notes = *params.Notes
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&rec).Error; err != nil {
		return domain.BusinessDD{}, err
	}

	var stored businessDDModel
	if err := r.db.WithContext(ctx).Where("asset_id = ?", params.AssetID).Take(&stored).Error; err != nil {
		return domain.BusinessDD{}, err
	}
	return *toDomainBusinessDD(stored), nil
}

func (r *gateRecordRepository) UpsertTechDD(ctx context.Context, params ports.UpsertTechDDParams) (domain.TechDD, error) {
	assignments := map[string]any{}
	rec := techDDModel{AssetID: params.AssetID}
	if params.PriceOracleNeeded != nil {
		assignments["price_oracle_needed"] = *params.PriceOracleNeeded
		rec.PriceOracleNeeded = *params.PriceOracleNeeded
	}
	if params.AdapterNeeded != nil {
		assignments["adapter_needed"] = *params.AdapterNeeded
		rec.AdapterNeeded = *params.AdapterNeeded
	}
	if params.PhantomTokenNeeded != nil {
		assignments["phantom_token_needed"] = *params.PhantomTokenNeeded
		rec.PhantomTokenNeeded = *params.PhantomTokenNeeded
	}
	if params.DeveloperUserIDSet {
		assignments["developer_user_id"] = params.DeveloperUserID
		rec.DeveloperUserID = params.DeveloperUserID
	}
	if params.AuditETASet {
		assignments["audit_eta"] = params.AuditETA
		rec.AuditETA = params.AuditETA
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&rec).Error; err != nil {
		return domain.TechDD{}, err
	}

	var stored techDDModel
	if err := r.db.WithContext(ctx).Where("asset_id = ?", params.AssetID).Take(&stored).Error; err != nil {
		return domain.TechDD{}, err
	}
	return *toDomainTechDD(stored), nil
}

func (r *gateRecordRepository) UpsertIntegrationBuild(ctx context.Context, params ports.UpsertIntegrationBuildParams) (domain.IntegrationBuild, error) {
	assignments := map[string]any{}
	rec := integrationBuildModel{
		AssetID:             params.AssetID,
		BuildStatus:         string(domain.BuildStatusNotStarted),
		AIAuditStatus:       string(domain.BuildStatusNotStarted),
		InternalAuditStatus: string(domain.BuildStatusNotStarted),
	}
	if params.BuildStatus != nil {
		assignments["build_status"] = string(*params.BuildStatus)
		rec.BuildStatus = string(*params.BuildStatus)
	}
	if params.AIAuditStatus != nil {
		assignments["ai_audit_status"] = string(*params.AIAuditStatus)
		rec.AIAuditStatus = string(*params.AIAuditStatus)
	}
	if params.InternalAuditStatus != nil {
		assignments["internal_audit_status"] = string(*params.InternalAuditStatus)
		rec.InternalAuditStatus = string(*params.InternalAuditStatus)
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&rec).Error; err != nil {
		return domain.IntegrationBuild{}, err
	}

	var stored integrationBuildModel
	if err := r.db.WithContext(ctx).Where("asset_id = ?", params.AssetID).Take(&stored).Error; err != nil {
		return domain.IntegrationBuild{}, err
	}
	return *toDomainIntegrationBuild(stored), nil
}
