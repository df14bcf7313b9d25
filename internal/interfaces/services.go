package interfaces

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
)

// NameService turns user input into a resolved address
type NameService interface {
	Resolve(ctx context.Context, input string) (*business.ResolvedName, error)
}

// StatsService aggregates on-chain activity for an address
type StatsService interface {
	GetUserStats(ctx context.Context, address common.Address) (*business.UserStats, error)
}
