package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"github.com/vaultscope/asset-onboarding/internal/ports"
)

func seedAsset(t *testing.T, repo *fakeAssetRepo, stage domain.Stage) domain.Asset {
	t.Helper()
	asset, err := repo.Create(context.Background(), ports.CreateAssetParams{
		AssetSymbol:  "wstETH",
		AssetAddress: "0x7f39c581f595b53c5cb19bd0b3f8da6c935e2ca0",
		ChainID:      1,
		Source:       domain.SourcePartner,
	})
	require.NoError(t, err)
	if stage != domain.StageRequest {
		asset.CurrentStage = stage
		repo.assets[asset.AssetID] = asset
	}
	return asset
}

func TestMoveAssetStageNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _ := newTestService()

	_, err := svc.MoveAssetStage(context.Background(), uuid.New(), domain.StageBusinessDD, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMoveAssetStageForwardDeniedLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	svc, assets, _, outbox, _ := newTestService()
	asset := seedAsset(t, assets, domain.StageBusinessDD)

	// No BusinessDD record present: the tech_dd gate must deny.
	_, err := svc.MoveAssetStage(context.Background(), asset.AssetID, domain.StageTechDD, uuid.New())
	require.ErrorIs(t, err, domain.ErrGateDenied)
	assert.Contains(t, err.Error(), domain.DenyNoInterestedCurator)

	stored, err := assets.GetByID(context.Background(), asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageBusinessDD, stored.CurrentStage)
	assert.Empty(t, assets.log, "denied move must not append an audit row")
	assert.Empty(t, outbox.events)
}

func TestMoveAssetStageForwardPermitted(t *testing.T) {
	t.Parallel()
	svc, assets, gates, outbox, _ := newTestService()
	asset := seedAsset(t, assets, domain.StageBuildingIntegration)

	gates.put(asset.AssetID, func(rec *domain.GateRecords) {
		rec.IntegrationBuild = &domain.IntegrationBuild{
			AssetID:             asset.AssetID,
			BuildStatus:         domain.BuildStatusDone,
			AIAuditStatus:       domain.BuildStatusDone,
			InternalAuditStatus: domain.BuildStatusDone,
		}
	})

	actor := uuid.New()
	resp, err := svc.MoveAssetStage(context.Background(), asset.AssetID, domain.StageAudit, actor)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StageAudit), resp.CurrentStage)

	require.Len(t, assets.log, 1)
	assert.Equal(t, domain.StageBuildingIntegration, assets.log[0].FromStage)
	assert.Equal(t, domain.StageAudit, assets.log[0].ToStage)
	assert.Equal(t, actor, assets.log[0].MovedByUserID)

	require.Len(t, outbox.events, 1)
	assert.Equal(t, EventTypeStageChanged, outbox.events[0].EventType)
}

func TestMoveAssetStageDeveloperRequiredScenario(t *testing.T) {
	t.Parallel()
	svc, assets, gates, _, _ := newTestService()
	asset := seedAsset(t, assets, domain.StageTechDD)

	gates.put(asset.AssetID, func(rec *domain.GateRecords) {
		rec.TechDD = &domain.TechDD{AssetID: asset.AssetID, PriceOracleNeeded: true}
	})

	_, err := svc.MoveAssetStage(context.Background(), asset.AssetID, domain.StageBuildingIntegration, uuid.New())
	require.ErrorIs(t, err, domain.ErrGateDenied)
	assert.Contains(t, err.Error(), domain.DenyDeveloperUnassigned)

	stored, err := assets.GetByID(context.Background(), asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageTechDD, stored.CurrentStage)
	assert.Empty(t, assets.log)
}

func TestMoveAssetStageBackwardAlwaysPermitted(t *testing.T) {
	t.Parallel()
	svc, assets, _, _, _ := newTestService()
	asset := seedAsset(t, assets, domain.StageProduction)

	// No gate records at all; backward jumps never consult gates.
	resp, err := svc.MoveAssetStage(context.Background(), asset.AssetID, domain.StageRequest, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StageRequest), resp.CurrentStage)

	require.Len(t, assets.log, 1)
	assert.Equal(t, domain.StageProduction, assets.log[0].FromStage)
	assert.Equal(t, domain.StageRequest, assets.log[0].ToStage)
}

func TestMoveAssetStageSelfMoveStillLogged(t *testing.T) {
	t.Parallel()
	svc, assets, _, _, _ := newTestService()
	asset := seedAsset(t, assets, domain.StageAudit)

	resp, err := svc.MoveAssetStage(context.Background(), asset.AssetID, domain.StageAudit, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StageAudit), resp.CurrentStage)

	require.Len(t, assets.log, 1)
	assert.Equal(t, assets.log[0].FromStage, assets.log[0].ToStage)
}

func TestMoveAssetStageRejectsUnknownStage(t *testing.T) {
	t.Parallel()
	svc, assets, _, _, _ := newTestService()
	asset := seedAsset(t, assets, domain.StageRequest)

	_, err := svc.MoveAssetStage(context.Background(), asset.AssetID, domain.Stage("shipped"), uuid.New())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMoveAssetStageConflictOnStaleRead(t *testing.T) {
	t.Parallel()
	svc, assets, _, _, _ := newTestService()
	asset := seedAsset(t, assets, domain.StageTesting)

	// A racing writer moves the asset after our read; the conditional
	// write must reject the stale transition.
	_, err := assets.MoveStage(context.Background(), ports.MoveStageParams{
		AssetID: asset.AssetID,
		From:    domain.StageTesting,
		To:      domain.StageProduction,
	})
	require.NoError(t, err)

	_, err = assets.MoveStage(context.Background(), ports.MoveStageParams{
		AssetID: asset.AssetID,
		From:    domain.StageTesting,
		To:      domain.StageBuildingBundle,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	_ = svc
}

func TestTransitionLogReplayReconstructsStage(t *testing.T) {
	t.Parallel()
	svc, assets, gates, _, _ := newTestService()
	asset := seedAsset(t, assets, domain.StageRequest)

	gates.put(asset.AssetID, func(rec *domain.GateRecords) {
		rec.Request = &domain.RequestFields{
			AssetID:      asset.AssetID,
			AssetSymbol:  asset.AssetSymbol,
			AssetAddress: asset.AssetAddress,
			ChainID:      asset.ChainID,
			Source:       asset.Source,
		}
		rec.BusinessDD = &domain.BusinessDD{AssetID: asset.AssetID, InterestedCuratorIDs: []uuid.UUID{uuid.New()}}
	})

	actor := uuid.New()
	ctx := context.Background()
	for _, target := range []domain.Stage{domain.StageBusinessDD, domain.StageTechDD, domain.StageBusinessDD} {
		_, err := svc.MoveAssetStage(ctx, asset.AssetID, target, actor)
		require.NoError(t, err)
	}

	log, err := svc.ListTransitions(ctx, asset.AssetID)
	require.NoError(t, err)
	require.Len(t, log, 3)

	replayed := domain.StageRequest
	for _, entry := range log {
		require.Equal(t, string(replayed), entry.FromStage, "log must chain from the prior stage")
		replayed = domain.Stage(entry.ToStage)
	}
	stored, err := assets.GetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, stored.CurrentStage, replayed)
}

func TestListTransitionsUnknownAsset(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _ := newTestService()

	_, err := svc.ListTransitions(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
