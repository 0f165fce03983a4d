package application

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/domain"
)

type CreateAssetRequest struct {
	AssetSymbol  string  `json:"asset_symbol"`
	AssetAddress string  `json:"asset_address"`
	ChainID      int     `json:"chain_id"`
	ProtocolID   *string `json:"protocol_id"`
	Source       string  `json:"source"`
	OwnerUserID  *string `json:"owner_user_id"`
}

type MoveStageRequest struct {
	Stage string `json:"stage"`
}

type UpdateBusinessDDRequest struct {
	InterestedCuratorIDs *[]string `json:"interested_curator_ids,omitempty"`
	Notes                *string   `json:"notes,omitempty"`
}

type UpdateTechDDRequest struct {
	PriceOracleNeeded  *bool   `json:"price_oracle_needed,omitempty"`
	AdapterNeeded      *bool   `json:"adapter_needed,omitempty"`
	PhantomTokenNeeded *bool   `json:"phantom_token_needed,omitempty"`
	DeveloperUserID    *string `json:"developer_user_id"`
	DeveloperSet       bool    `json:"-"`
	AuditETA           *string `json:"audit_eta"`
	AuditETASet        bool    `json:"-"`
}

// UnmarshalJSON records key presence for the nullable fields so an explicit
// null clears the value while an absent key leaves it unchanged.
func (r *UpdateTechDDRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateTechDDRequest
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*r = UpdateTechDDRequest(decoded)
	_, r.DeveloperSet = keys["developer_user_id"]
	_, r.AuditETASet = keys["audit_eta"]
	return nil
}

type UpdateIntegrationBuildRequest struct {
	BuildStatus         *string `json:"build_status,omitempty"`
	AIAuditStatus       *string `json:"ai_audit_status,omitempty"`
	InternalAuditStatus *string `json:"internal_audit_status,omitempty"`
}

type AssetResponse struct {
	AssetID      string    `json:"asset_id"`
	AssetSymbol  string    `json:"asset_symbol"`
	AssetAddress string    `json:"asset_address"`
	ChainID      int       `json:"chain_id"`
	ProtocolID   *string   `json:"protocol_id,omitempty"`
	Source       string    `json:"source"`
	CurrentStage string    `json:"current_stage"`
	OwnerUserID  *string   `json:"owner_user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type TransitionResponse struct {
	TransitionID  string    `json:"transition_id"`
	AssetID       string    `json:"asset_id"`
	FromStage     string    `json:"from_stage"`
	ToStage       string    `json:"to_stage"`
	MovedByUserID string    `json:"moved_by_user_id"`
	MovedAt       time.Time `json:"moved_at"`
}

type BoardColumn struct {
	Stage  string          `json:"stage"`
	Assets []AssetResponse `json:"assets"`
}

type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
}

type BusinessDDResponse struct {
	AssetID              string   `json:"asset_id"`
	InterestedCuratorIDs []string `json:"interested_curator_ids"`
	Notes                string   `json:"notes,omitempty"`
}

type TechDDResponse struct {
	AssetID            string     `json:"asset_id"`
	PriceOracleNeeded  bool       `json:"price_oracle_needed"`
	AdapterNeeded      bool       `json:"adapter_needed"`
	PhantomTokenNeeded bool       `json:"phantom_token_needed"`
	DeveloperUserID    *string    `json:"developer_user_id,omitempty"`
	AuditETA           *time.Time `json:"audit_eta,omitempty"`
}

type IntegrationBuildResponse struct {
	AssetID             string `json:"asset_id"`
	BuildStatus         string `json:"build_status"`
	AIAuditStatus       string `json:"ai_audit_status"`
	InternalAuditStatus string `json:"internal_audit_status"`
}

func toAssetResponse(a domain.Asset) AssetResponse {
	resp := AssetResponse{
		AssetID:      a.AssetID.String(),
		AssetSymbol:  a.AssetSymbol,
		AssetAddress: a.AssetAddress,
		ChainID:      a.ChainID,
		Source:       string(a.Source),
		CurrentStage: string(a.CurrentStage),
		CreatedAt:    a.CreatedAt,
	}
	if a.ProtocolID != nil {
		v := a.ProtocolID.String()
		resp.ProtocolID = &v
	}
	if a.OwnerUserID != nil {
		v := a.OwnerUserID.String()
		resp.OwnerUserID = &v
	}
	return resp
}

func toTransitionResponse(t domain.StageTransition) TransitionResponse {
	return TransitionResponse{
		TransitionID:  t.TransitionID.String(),
		AssetID:       t.AssetID.String(),
		FromStage:     string(t.FromStage),
		ToStage:       string(t.ToStage),
		MovedByUserID: t.MovedByUserID.String(),
		MovedAt:       t.MovedAt,
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
