package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
)

type CreateAssetParams struct {
	AssetSymbol  string
	AssetAddress string
	ChainID      int
	ProtocolID   *uuid.UUID
	Source       domain.AssetSource
	OwnerUserID  *uuid.UUID
	CreatedAt    time.Time
}

// MoveStageParams describes one stage transition. From is the stage the
// caller read before deciding the move was permitted; the repository must
// only commit if the stored stage still equals From.
type MoveStageParams struct {
	AssetID       uuid.UUID
	From          domain.Stage
	To            domain.Stage
	MovedByUserID uuid.UUID
	MovedAt       time.Time
}

type AssetRepository interface {
	// Create inserts the asset at StageRequest together with its
	// RequestFields record in one transaction. Returns
	// domain.ErrConflict when (chain_id, asset_address) already exists.
	Create(ctx context.Context, params CreateAssetParams) (domain.Asset, error)
	GetByID(ctx context.Context, assetID uuid.UUID) (domain.Asset, error)
	List(ctx context.Context) ([]domain.Asset, error)
	// MoveStage atomically sets current_stage and appends the audit row.
	// Both writes commit together or not at all. Returns domain.ErrConflict
	// when the stored stage no longer equals params.From, and
	// domain.ErrNotFound when the asset is gone.
	MoveStage(ctx context.Context, params MoveStageParams) (domain.Asset, error)
}

type TransitionLogRepository interface {
	ListByAssetID(ctx context.Context, assetID uuid.UUID) ([]domain.StageTransition, error)
}

type UpsertBusinessDDParams struct {
	AssetID              uuid.UUID
	InterestedCuratorIDs *[]uuid.UUID
	Notes                *string
}

// UpsertTechDDParams uses Set flags for the nullable fields so callers can
// distinguish "leave unchanged" from "clear to null".
type UpsertTechDDParams struct {
	AssetID            uuid.UUID
	PriceOracleNeeded  *bool
	AdapterNeeded      *bool
	PhantomTokenNeeded *bool
	DeveloperUserID    *uuid.UUID
	DeveloperUserIDSet bool
	AuditETA           *time.Time
	AuditETASet        bool
}

type UpsertIntegrationBuildParams struct {
	AssetID             uuid.UUID
	BuildStatus         *domain.BuildStatus
	AIAuditStatus       *domain.BuildStatus
	InternalAuditStatus *domain.BuildStatus
}

// GateRecordRepository reads and upserts the collaborator-owned gate
// records. The transition engine only calls GetGateRecords; the upserts
// back the collaborator-facing endpoints.
type GateRecordRepository interface {
	// GetGateRecords loads the latest gate records for the asset. Missing
	// records come back as nil fields, never as an error.
	GetGateRecords(ctx context.Context, assetID uuid.UUID) (domain.GateRecords, error)
	UpsertBusinessDD(ctx context.Context, params UpsertBusinessDDParams) (domain.BusinessDD, error)
	UpsertTechDD(ctx context.Context, params UpsertTechDDParams) (domain.TechDD, error)
	UpsertIntegrationBuild(ctx context.Context, params UpsertIntegrationBuildParams) (domain.IntegrationBuild, error)
}

type OutboxEvent struct {
	EventID      uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	OccurredAt   time.Time
}

type OutboxRecord struct {
	OutboxID     uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	RetryCount   int
	PublishedAt  *time.Time
	LastError    *string
	FirstSeenAt  time.Time
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event OutboxEvent) error
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, outboxID uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, outboxID uuid.UUID, errMsg string, at time.Time) error
}
