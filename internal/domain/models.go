package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssetSource string

const (
	SourcePartner AssetSource = "partner"
	SourceAnalyst AssetSource = "analyst"
)

type BuildStatus string

const (
	BuildStatusNotStarted BuildStatus = "not_started"
	BuildStatusInProgress BuildStatus = "in_progress"
	BuildStatusDone       BuildStatus = "done"
)

// Asset is the aggregate tracked through the onboarding pipeline.
// CurrentStage is the only field the transition engine mutates; everything
// else is fixed at creation time.
type Asset struct {
	AssetID      uuid.UUID
	AssetSymbol  string
	AssetAddress string
	ChainID      int
	ProtocolID   *uuid.UUID
	Source       AssetSource
	CurrentStage Stage
	OwnerUserID  *uuid.UUID
	CreatedAt    time.Time
}

// StageTransition is one append-only audit log entry. Rows are never updated
// or deleted; replaying an asset's log from StageRequest reconstructs its
// current stage.
type StageTransition struct {
	TransitionID  uuid.UUID
	AssetID       uuid.UUID
	FromStage     Stage
	ToStage       Stage
	MovedByUserID uuid.UUID
	MovedAt       time.Time
}

// RequestFields is the intake gate record captured when an asset is requested.
type RequestFields struct {
	AssetID      uuid.UUID
	AssetSymbol  string
	AssetAddress string
	ChainID      int
	ProtocolID   *uuid.UUID
	Source       AssetSource
}

// BusinessDD holds business due-diligence findings for an asset.
type BusinessDD struct {
	AssetID              uuid.UUID
	InterestedCuratorIDs []uuid.UUID
	Notes                string
}

// TechDD holds technical due-diligence findings for an asset.
type TechDD struct {
	AssetID            uuid.UUID
	PriceOracleNeeded  bool
	AdapterNeeded      bool
	PhantomTokenNeeded bool
	DeveloperUserID    *uuid.UUID
	AuditETA           *time.Time
}

// IntegrationBuild tracks the three independent build/audit workstreams.
type IntegrationBuild struct {
	AssetID             uuid.UUID
	BuildStatus         BuildStatus
	AIAuditStatus       BuildStatus
	InternalAuditStatus BuildStatus
}

// GateRecords bundles the auxiliary records a forward move is gated on.
// Each record is optional; gate predicates treat a nil record as absent.
// The records are owned and written by collaborator features; the
// transition engine only ever reads them.
type GateRecords struct {
	Request          *RequestFields
	BusinessDD       *BusinessDD
	TechDD           *TechDD
	IntegrationBuild *IntegrationBuild
}
