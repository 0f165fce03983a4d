package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"github.com/vaultscope/asset-onboarding/internal/ports"
)

// Gate record upserts back the due-diligence and build-tracking features.
// They may run at any time regardless of the asset's current stage; the
// transition engine reads whatever is stored when a move is requested.

func (s *Service) UpdateBusinessDD(ctx context.Context, assetID uuid.UUID, req UpdateBusinessDDRequest) (BusinessDDResponse, error) {
	if _, err := s.assets.GetByID(ctx, assetID); err != nil {
		return BusinessDDResponse{}, err
	}

	params := ports.UpsertBusinessDDParams{AssetID: assetID, Notes: req.Notes}
	if req.InterestedCuratorIDs != nil {
		ids := make([]uuid.UUID, 0, len(*req.InterestedCuratorIDs))
		for _, raw := range *req.InterestedCuratorIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return BusinessDDResponse{}, fmt.Errorf("%w: interested_curator_ids must be uuids", domain.ErrInvalidInput)
			}
			ids = append(ids, id)
		}
		params.InterestedCuratorIDs = &ids
	}

	updated, err := s.gates.UpsertBusinessDD(ctx, params)
	if err != nil {
		return BusinessDDResponse{}, err
	}
	return BusinessDDResponse{
		AssetID:              updated.AssetID.String(),
		InterestedCuratorIDs: uuidStrings(updated.InterestedCuratorIDs),
		Notes:                updated.Notes,
	}, nil
}

func (s *Service) UpdateTechDD(ctx context.Context, assetID uuid.UUID, req UpdateTechDDRequest) (TechDDResponse, error) {
	if _, err := s.assets.GetByID(ctx, assetID); err != nil {
		return TechDDResponse{}, err
	}

	params := ports.UpsertTechDDParams{
		AssetID:            assetID,
		PriceOracleNeeded:  req.PriceOracleNeeded,
		AdapterNeeded:      req.AdapterNeeded,
		PhantomTokenNeeded: req.PhantomTokenNeeded,
		DeveloperUserIDSet: req.DeveloperSet,
		AuditETASet:        req.AuditETASet,
	}
	if req.DeveloperSet && req.DeveloperUserID != nil {
		id, err := uuid.Parse(*req.DeveloperUserID)
		if err != nil {
			return TechDDResponse{}, fmt.Errorf("%w: developer_user_id must be a uuid", domain.ErrInvalidInput)
		}
		params.DeveloperUserID = &id
	}
	if req.AuditETASet && req.AuditETA != nil {
		eta, err := time.Parse(time.RFC3339, *req.AuditETA)
		if err != nil {
			return TechDDResponse{}, fmt.Errorf("%w: audit_eta must be an RFC3339 timestamp", domain.ErrInvalidInput)
		}
		params.AuditETA = &eta
	}

	updated, err := s.gates.UpsertTechDD(ctx, params)
	if err != nil {
		return TechDDResponse{}, err
	}
	resp := TechDDResponse{
		AssetID:            updated.AssetID.String(),
		PriceOracleNeeded:  updated.PriceOracleNeeded,
		AdapterNeeded:      updated.AdapterNeeded,
		PhantomTokenNeeded: updated.PhantomTokenNeeded,
		AuditETA:           updated.AuditETA,
	}
	if updated.DeveloperUserID != nil {
		v := updated.DeveloperUserID.String()
		resp.DeveloperUserID = &v
	}
	return resp, nil
}

func (s *Service) UpdateIntegrationBuild(ctx context.Context, assetID uuid.UUID, req UpdateIntegrationBuildRequest) (IntegrationBuildResponse, error) {
	if _, err := s.assets.GetByID(ctx, assetID); err != nil {
		return IntegrationBuildResponse{}, err
	}

	params := ports.UpsertIntegrationBuildParams{AssetID: assetID}
	var err error
	if params.BuildStatus, err = parseOptionalBuildStatus(req.BuildStatus); err != nil {
		return IntegrationBuildResponse{}, err
	}
	if params.AIAuditStatus, err = parseOptionalBuildStatus(req.AIAuditStatus); err != nil {
		return IntegrationBuildResponse{}, err
	}
	if params.InternalAuditStatus, err = parseOptionalBuildStatus(req.InternalAuditStatus); err != nil {
		return IntegrationBuildResponse{}, err
	}

	updated, err := s.gates.UpsertIntegrationBuild(ctx, params)
	if err != nil {
		return IntegrationBuildResponse{}, err
	}
	return IntegrationBuildResponse{
		AssetID:             updated.AssetID.String(),
		BuildStatus:         string(updated.BuildStatus),
		AIAuditStatus:       string(updated.AIAuditStatus),
		InternalAuditStatus: string(updated.InternalAuditStatus),
	}, nil
}

func parseOptionalBuildStatus(raw *string) (*domain.BuildStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := domain.ParseBuildStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
