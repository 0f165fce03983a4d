package postgres

import "github.com/vaultscope/asset-onboarding/internal/domain"

func toDomainAsset(rec assetModel) domain.Asset {
	return domain.Asset{
		AssetID:      rec.AssetID,
		AssetSymbol:  rec.AssetSymbol,
		AssetAddress: rec.AssetAddress,
		ChainID:      rec.ChainID,
		ProtocolID:   rec.ProtocolID,
		Source:       domain.AssetSource(rec.Source),
		CurrentStage: domain.Stage(rec.CurrentStage),
		OwnerUserID:  rec.OwnerUserID,
		CreatedAt:    rec.CreatedAt,
	}
}

func toDomainTransition(rec stageTransitionModel) domain.StageTransition {
	return domain.StageTransition{
		TransitionID:  rec.TransitionID,
		AssetID:       rec.AssetID,
		FromStage:     domain.Stage(rec.FromStage),
		ToStage:       domain.Stage(rec.ToStage),
		MovedByUserID: rec.MovedByUserID,
		MovedAt:       rec.MovedAt,
	}
}

func toDomainRequestFields(rec requestFieldsModel) *domain.RequestFields {
	return &domain.RequestFields{
		AssetID:      rec.AssetID,
		AssetSymbol:  rec.AssetSymbol,
		AssetAddress: rec.AssetAddress,
		ChainID:      rec.ChainID,
		ProtocolID:   rec.ProtocolID,
		Source:       domain.AssetSource(rec.Source),
	}
}

func toDomainBusinessDD(rec businessDDModel) *domain.BusinessDD {
	return &domain.BusinessDD{
		AssetID:              rec.AssetID,
		InterestedCuratorIDs: rec.InterestedCuratorIDs,
		Notes:                rec.Notes,
	}
}

func toDomainTechDD(rec techDDModel) *domain.TechDD {
	return &domain.TechDD{
		AssetID:            rec.AssetID,
		PriceOracleNeeded:  rec.PriceOracleNeeded,
		AdapterNeeded:      rec.AdapterNeeded,
		PhantomTokenNeeded: rec.PhantomTokenNeeded,
		DeveloperUserID:    rec.DeveloperUserID,
		AuditETA:           rec.AuditETA,
	}
}

func toDomainIntegrationBuild(rec integrationBuildModel) *domain.IntegrationBuild {
	return &domain.IntegrationBuild{
		AssetID:             rec.AssetID,
		BuildStatus:         domain.BuildStatus(rec.BuildStatus),
		AIAuditStatus:       domain.BuildStatus(rec.AIAuditStatus),
		InternalAuditStatus: domain.BuildStatus(rec.InternalAuditStatus),
	}
}
