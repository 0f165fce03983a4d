package domain

// Denial reasons surfaced verbatim to callers. A denial is data, not a
// fault: it tells the user which paperwork is missing, never why the rule
// exists.
const (
	DenyRequestFieldsMissing    = "Request fields are required"
	DenyRequestFieldsIncomplete = "All request fields must be completed"
	DenyNoInterestedCurator     = "At least one interested curator must be linked"
	DenyTechDDMissing           = "Technical due diligence fields are required"
	DenyDeveloperUnassigned     = "Developer must be assigned when technical work is needed"
	DenyIntegrationBuildMissing = "Integration build fields are required"
	DenyBuildNotDone            = "All build and audit statuses must be completed"
	DenyInvalidTransition       = "Invalid stage transition"
)

// gatePredicate inspects the latest gate records and returns a denial
// reason, or "" when the move is permitted.
type gatePredicate func(GateRecords) string

var stageGates = map[Stage]gatePredicate{
	StageBusinessDD:          gateBusinessDD,
	StageTechDD:              gateTechDD,
	StageBuildingIntegration: gateBuildingIntegration,
	StageAudit:               gateAudit,
	StageBuildingBundle:      gateAlwaysPermit,
	StageTesting:             gateAlwaysPermit,
	StageProduction:          gateAlwaysPermit,
}

// EvaluateGate applies the gate predicate for a forward move into target.
// It returns "" when the move is permitted, otherwise the denial reason.
// Callers are expected to have already classified the move as forward; the
// target StageRequest has no gate because nothing moves forward into it.
func EvaluateGate(target Stage, records GateRecords) string {
	predicate, ok := stageGates[target]
	if !ok {
		// Unreachable while Stage stays a closed set; kept so a bad
		// caller fails closed instead of permitting the move.
		return DenyInvalidTransition
	}
	return predicate(records)
}

func gateAlwaysPermit(GateRecords) string { return "" }

func gateBusinessDD(records GateRecords) string {
	rf := records.Request
	if rf == nil {
		return DenyRequestFieldsMissing
	}
	if rf.AssetSymbol == "" || rf.AssetAddress == "" || rf.ChainID == 0 || rf.Source == "" {
		return DenyRequestFieldsIncomplete
	}
	return ""
}

func gateTechDD(records GateRecords) string {
	bdd := records.BusinessDD
	if bdd == nil || len(bdd.InterestedCuratorIDs) == 0 {
		return DenyNoInterestedCurator
	}
	return ""
}

func gateBuildingIntegration(records GateRecords) string {
	tdd := records.TechDD
	if tdd == nil {
		return DenyTechDDMissing
	}
	if tdd.PriceOracleNeeded || tdd.AdapterNeeded || tdd.PhantomTokenNeeded {
		if tdd.DeveloperUserID == nil {
			return DenyDeveloperUnassigned
		}
	}
	return ""
}

func gateAudit(records GateRecords) string {
	ib := records.IntegrationBuild
	if ib == nil {
		return DenyIntegrationBuildMissing
	}
	if ib.BuildStatus != BuildStatusDone || ib.AIAuditStatus != BuildStatusDone || ib.InternalAuditStatus != BuildStatusDone {
		return DenyBuildNotDone
	}
	return ""
}
