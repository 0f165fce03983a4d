package postgres

import (
	"github.com/vaultscope/asset-onboarding/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Assets      ports.AssetRepository
	Transitions ports.TransitionLogRepository
	Gates       ports.GateRecordRepository
	Outbox      ports.OutboxRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Assets:      &assetRepository{db: db},
		Transitions: &transitionLogRepository{db: db},
		Gates:       &gateRecordRepository{db: db},
		Outbox:      &outboxRepository{db: db},
	}
}
