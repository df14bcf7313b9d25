package ens

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/constants"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Router sends names under the Basenames suffix to the Base registry and everything
// else to the mainnet ENS registry.
type Router struct {
	basenames *Registry
	mainnet   *Registry
	suffix    string
	closers   []func()
}

// NewRouter creates a Router. Names ending in suffix go to basenames; the suffix is
// normalized with NormalizeSuffix.
func NewRouter(basenames, mainnet *Registry, suffix string) *Router {
	return &Router{
		basenames: basenames,
		mainnet:   mainnet,
		suffix:    NormalizeSuffix(suffix),
	}
}

// NormalizeSuffix lowercases and trims suffix and gives it a leading dot. An empty
// suffix becomes the Basenames suffix.
func NormalizeSuffix(suffix string) string {
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if suffix == "" || suffix == "." {
		return constants.BasenameSuffix
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return suffix
}

// RouterConfig holds the endpoints needed by DialRouter.
type RouterConfig struct {
	BaseRPCURL       string
	EthRPCURL        string
	BasenameRegistry string
	ENSRegistry      string
	BasenameSuffix   string
	Logger           *zap.Logger
}

// DialRouter connects to both RPC endpoints and returns a ready Router. Call Close when done.
func DialRouter(ctx context.Context, cfg RouterConfig) (*Router, error) {
	for _, addr := range []string{cfg.BasenameRegistry, cfg.ENSRegistry} {
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid registry address %q", addr)
		}
	}

	baseClient, err := ethclient.DialContext(ctx, cfg.BaseRPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Base RPC: %w", err)
	}
	ethClient, err := ethclient.DialContext(ctx, cfg.EthRPCURL)
	if err != nil {
		baseClient.Close()
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	router := NewRouter(
		NewRegistry(baseClient, common.HexToAddress(cfg.BasenameRegistry), cfg.Logger),
		NewRegistry(ethClient, common.HexToAddress(cfg.ENSRegistry), cfg.Logger),
		cfg.BasenameSuffix,
	)
	router.closers = []func(){baseClient.Close, ethClient.Close}
	return router, nil
}

// LookupAddress resolves name through the registry responsible for it.
func (r *Router) LookupAddress(ctx context.Context, name string) (common.Address, error) {
	return r.registryFor(name).LookupAddress(ctx, name)
}

func (r *Router) registryFor(name string) *Registry {
	if strings.HasSuffix(strings.ToLower(name), r.suffix) {
		return r.basenames
	}
	return r.mainnet
}

// Close releases the underlying RPC connections.
func (r *Router) Close() {
	for _, closeFn := range r.closers {
		closeFn()
	}
}
