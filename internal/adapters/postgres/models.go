package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type assetModel struct {
	AssetID      uuid.UUID  `gorm:"column:asset_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssetSymbol  string     `gorm:"column:asset_symbol"`
	AssetAddress string     `gorm:"column:asset_address"`
	ChainID      int        `gorm:"column:chain_id"`
	ProtocolID   *uuid.UUID `gorm:"column:protocol_id"`
	Source       string     `gorm:"column:source"`
	CurrentStage string     `gorm:"column:current_stage"`
	OwnerUserID  *uuid.UUID `gorm:"column:owner_user_id"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
}

func (assetModel) TableName() string { return "assets" }

type stageTransitionModel struct {
	TransitionID  uuid.UUID `gorm:"column:transition_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssetID       uuid.UUID `gorm:"column:asset_id"`
	FromStage     string    `gorm:"column:from_stage"`
	ToStage       string    `gorm:"column:to_stage"`
	MovedByUserID uuid.UUID `gorm:"column:moved_by_user_id"`
	MovedAt       time.Time `gorm:"column:moved_at"`
}

func (stageTransitionModel) TableName() string { return "asset_stage_transitions" }

type requestFieldsModel struct {
	AssetID      uuid.UUID  `gorm:"column:asset_id;type:uuid;primaryKey"`
	AssetSymbol  string     `gorm:"column:asset_symbol"`
	AssetAddress string     `gorm:"column:asset_address"`
	ChainID      int        `gorm:"column:chain_id"`
	ProtocolID   *uuid.UUID `gorm:"column:protocol_id"`
	Source       string     `gorm:"column:source"`
}

func (requestFieldsModel) TableName() string { return "asset_request_fields" }

// uuidList stores a uuid slice as jsonb.
type uuidList []uuid.UUID

func (l uuidList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *uuidList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported uuid list source %T", src)
	}
}

type businessDDModel struct {
	AssetID              uuid.UUID `gorm:"column:asset_id;type:uuid;primaryKey"`
	InterestedCuratorIDs uuidList  `gorm:"column:interested_curator_ids;type:jsonb"`
	Notes                string    `gorm:"column:notes"`
}

func (businessDDModel) TableName() string { return "asset_business_dd" }

type techDDModel struct {
	AssetID            uuid.UUID  `gorm:"column:asset_id;type:uuid;primaryKey"`
	PriceOracleNeeded  bool       `gorm:"column:price_oracle_needed"`
	AdapterNeeded      bool       `gorm:"column:adapter_needed"`
	PhantomTokenNeeded bool       `gorm:"column:phantom_token_needed"`
	DeveloperUserID    *uuid.UUID `gorm:"column:developer_user_id"`
	AuditETA           *time.Time `gorm:"column:audit_eta"`
}

func (techDDModel) TableName() string { return "asset_tech_dd" }

type integrationBuildModel struct {
	AssetID             uuid.UUID `gorm:"column:asset_id;type:uuid;primaryKey"`
	BuildStatus         string    `gorm:"column:build_status"`
	AIAuditStatus       string    `gorm:"column:ai_audit_status"`
	InternalAuditStatus string    `gorm:"column:internal_audit_status"`
}

func (integrationBuildModel) TableName() string { return "asset_integration_build" }

type outboxModel struct {
	OutboxID     uuid.UUID  `gorm:"column:outbox_id;type:uuid;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      string     `gorm:"column:payload"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	FirstSeenAt  time.Time  `gorm:"column:first_seen_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
	RetryCount   int        `gorm:"column:retry_count"`
	LastError    *string    `gorm:"column:last_error"`
	LastErrorAt  *time.Time `gorm:"column:last_error_at"`
}

func (outboxModel) TableName() string { return "asset_outbox" }
