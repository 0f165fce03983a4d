package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
	"github.com/vaultscope/asset-onboarding/internal/ports"
)

// In-memory fakes mirroring the postgres repository contracts, including the
// conditional stage write.

type fakeAssetRepo struct {
	mu     sync.Mutex
	assets map[uuid.UUID]domain.Asset
	log    []domain.StageTransition
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[uuid.UUID]domain.Asset)}
}

func (r *fakeAssetRepo) Create(_ context.Context, params ports.CreateAssetParams) (domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.assets {
		if a.ChainID == params.ChainID && a.AssetAddress == params.AssetAddress {
			return domain.Asset{}, domain.ErrConflict
		}
	}
	asset := domain.Asset{
		AssetID:      uuid.New(),
		AssetSymbol:  params.AssetSymbol,
		AssetAddress: params.AssetAddress,
		ChainID:      params.ChainID,
		ProtocolID:   params.ProtocolID,
		Source:       params.Source,
		CurrentStage: domain.StageRequest,
		OwnerUserID:  params.OwnerUserID,
		CreatedAt:    params.CreatedAt,
	}
	r.assets[asset.AssetID] = asset
	return asset, nil
}

func (r *fakeAssetRepo) GetByID(_ context.Context, assetID uuid.UUID) (domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[assetID]
	if !ok {
		return domain.Asset{}, domain.ErrNotFound
	}
	return asset, nil
}

func (r *fakeAssetRepo) List(_ context.Context) ([]domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAssetRepo) MoveStage(_ context.Context, params ports.MoveStageParams) (domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[params.AssetID]
	if !ok {
		return domain.Asset{}, domain.ErrNotFound
	}
	if asset.CurrentStage != params.From {
		return domain.Asset{}, domain.ErrConflict
	}
	asset.CurrentStage = params.To
	r.assets[params.AssetID] = asset
	r.log = append(r.log, domain.StageTransition{
		TransitionID:  uuid.New(),
		AssetID:       params.AssetID,
		FromStage:     params.From,
		ToStage:       params.To,
		MovedByUserID: params.MovedByUserID,
		MovedAt:       params.MovedAt,
	})
	return asset, nil
}

func (r *fakeAssetRepo) ListByAssetID(_ context.Context, assetID uuid.UUID) ([]domain.StageTransition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.StageTransition
	for _, t := range r.log {
		if t.AssetID == assetID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeGateRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]domain.GateRecords
}

func newFakeGateRepo() *fakeGateRepo {
	return &fakeGateRepo{records: make(map[uuid.UUID]domain.GateRecords)}
}

func (r *fakeGateRepo) GetGateRecords(_ context.Context, assetID uuid.UUID) (domain.GateRecords, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[assetID], nil
}

func (r *fakeGateRepo) put(assetID uuid.UUID, mutate func(*domain.GateRecords)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[assetID]
	mutate(&rec)
	r.records[assetID] = rec
}

func (r *fakeGateRepo) UpsertBusinessDD(_ context.Context, params ports.UpsertBusinessDDParams) (domain.BusinessDD, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[params.AssetID]
	if rec.BusinessDD == nil {
		rec.BusinessDD = &domain.BusinessDD{AssetID: params.AssetID}
	}
	if params.InterestedCuratorIDs != nil {
		rec.BusinessDD.InterestedCuratorIDs = *params.InterestedCuratorIDs
	}
	if params.Notes != nil {
		rec.BusinessDD.Notes = *params.Notes
	}
	r.records[params.AssetID] = rec
	return *rec.BusinessDD, nil
}

func (r *fakeGateRepo) UpsertTechDD(_ context.Context, params ports.UpsertTechDDParams) (domain.TechDD, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[params.AssetID]
	if rec.TechDD == nil {
		rec.TechDD = &domain.TechDD{AssetID: params.AssetID}
	}
	if params.PriceOracleNeeded != nil {
		rec.TechDD.PriceOracleNeeded = *params.PriceOracleNeeded
	}
	if params.AdapterNeeded != nil {
		rec.TechDD.AdapterNeeded = *params.AdapterNeeded
	}
	if params.PhantomTokenNeeded != nil {
		rec.TechDD.PhantomTokenNeeded = *params.PhantomTokenNeeded
	}
	if params.DeveloperUserIDSet {
		rec.TechDD.DeveloperUserID = params.DeveloperUserID
	}
	if params.AuditETASet {
		rec.TechDD.AuditETA = params.AuditETA
	}
	r.records[params.AssetID] = rec
	return *rec.TechDD, nil
}

func (r *fakeGateRepo) UpsertIntegrationBuild(_ context.Context, params ports.UpsertIntegrationBuildParams) (domain.IntegrationBuild, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[params.AssetID]
	if rec.IntegrationBuild == nil {
		rec.IntegrationBuild = &domain.IntegrationBuild{
			AssetID:             params.AssetID,
			BuildStatus:         domain.BuildStatusNotStarted,
			AIAuditStatus:       domain.BuildStatusNotStarted,
			InternalAuditStatus: domain.BuildStatusNotStarted,
		}
	}
	if params.BuildStatus != nil {
		rec.IntegrationBuild.BuildStatus = *params.BuildStatus
	}
	if params.AIAuditStatus != nil {
		rec.IntegrationBuild.AIAuditStatus = *params.AIAuditStatus
	}
	if params.InternalAuditStatus != nil {
		rec.IntegrationBuild.InternalAuditStatus = *params.InternalAuditStatus
	}
	r.records[params.AssetID] = rec
	return *rec.IntegrationBuild, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.deletes++
	return nil
}

type fakeOutbox struct {
	mu     sync.Mutex
	events []ports.OutboxEvent
}

func (o *fakeOutbox) Enqueue(_ context.Context, event ports.OutboxEvent) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
	return nil
}

func (o *fakeOutbox) FetchUnpublished(_ context.Context, _ int) ([]ports.OutboxRecord, error) {
	return nil, nil
}

func (o *fakeOutbox) MarkPublished(context.Context, uuid.UUID, time.Time) error { return nil }

func (o *fakeOutbox) MarkFailed(context.Context, uuid.UUID, string, time.Time) error { return nil }

func newTestService() (*Service, *fakeAssetRepo, *fakeGateRepo, *fakeOutbox, *fakeCache) {
	assets := newFakeAssetRepo()
	gates := newFakeGateRepo()
	outbox := &fakeOutbox{}
	cache := newFakeCache()
	svc := NewService(Dependencies{
		Assets:      assets,
		Transitions: assets,
		Gates:       gates,
		Outbox:      outbox,
		Cache:       cache,
	})
	return svc, assets, gates, outbox, cache
}
