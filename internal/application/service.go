package application

import (
	"time"

	"github.com/vaultscope/asset-onboarding/internal/ports"
)

type Config struct {
	ServiceName   string
	BoardCacheTTL time.Duration
}

type Service struct {
	cfg         Config
	assets      ports.AssetRepository
	transitions ports.TransitionLogRepository
	gates       ports.GateRecordRepository
	outbox      ports.OutboxRepository
	cache       ports.Cache
	nowFn       func() time.Time
}

type Dependencies struct {
	Config      Config
	Assets      ports.AssetRepository
	Transitions ports.TransitionLogRepository
	Gates       ports.GateRecordRepository
	Outbox      ports.OutboxRepository
	Cache       ports.Cache
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "asset-onboarding-service"
	}
	if cfg.BoardCacheTTL <= 0 {
		cfg.BoardCacheTTL = 30 * time.Second
	}
	return &Service{
		cfg:         cfg,
		assets:      deps.Assets,
		transitions: deps.Transitions,
		gates:       deps.Gates,
		outbox:      deps.Outbox,
		cache:       deps.Cache,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

const boardCacheKey = "assets:board"
