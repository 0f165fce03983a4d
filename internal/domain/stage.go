package domain

import "fmt"

// Stage is one position in the fixed asset onboarding pipeline.
type Stage string

const (
	StageRequest             Stage = "request"
	StageBusinessDD          Stage = "business_dd"
	StageTechDD              Stage = "tech_dd"
	StageBuildingIntegration Stage = "building_integration"
	StageAudit               Stage = "audit"
	StageBuildingBundle      Stage = "building_bundle"
	StageTesting             Stage = "testing"
	StageProduction          Stage = "production"
)

// StageOrder lists every pipeline stage in ascending rank.
// The transition engine treats this slice as the single source of truth
// for ordering; anything not listed here is not a stage.
var StageOrder = []Stage{
	StageRequest,
	StageBusinessDD,
	StageTechDD,
	StageBuildingIntegration,
	StageAudit,
	StageBuildingBundle,
	StageTesting,
	StageProduction,
}

var stageRank = func() map[Stage]int {
	ranks := make(map[Stage]int, len(StageOrder))
	for i, s := range StageOrder {
		ranks[s] = i
	}
	return ranks
}()

// ParseStage converts raw input to a Stage, rejecting unknown values.
func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if _, ok := stageRank[s]; !ok {
		return "", fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, raw)
	}
	return s, nil
}

// Valid reports whether s is one of the defined pipeline stages.
func (s Stage) Valid() bool {
	_, ok := stageRank[s]
	return ok
}

// Rank returns the stage's index in the pipeline order, -1 for unknown stages.
func (s Stage) Rank() int {
	rank, ok := stageRank[s]
	if !ok {
		return -1
	}
	return rank
}

// IsForward reports whether moving from one stage to another advances the
// pipeline. Backward and same-rank moves are never forward: corrections and
// rollbacks must stay permitted regardless of gate record state.
func IsForward(from, to Stage) bool {
	return to.Rank() > from.Rank()
}
