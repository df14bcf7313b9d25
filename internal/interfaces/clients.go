package interfaces

//go:generate mockgen -source=clients.go -destination=../mocks/mock_clients.go -package=mocks

import (
	"context"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/client/explorer"
	"github.com/ethereum/go-ethereum/common"
)

// ExplorerFetcher retrieves one explorer endpoint with retries
type ExplorerFetcher interface {
	Fetch(ctx context.Context, rawURL string) (explorer.Result, error)
}

// AddressLookup resolves a fully qualified name to its address record.
// A zero address means the name has no record.
type AddressLookup interface {
	LookupAddress(ctx context.Context, name string) (common.Address, error)
}
