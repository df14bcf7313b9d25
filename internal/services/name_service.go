package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/client/ens"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/interfaces"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	// ErrRawAddress is returned when the input is a literal 0x address instead of a name.
	ErrRawAddress = errors.New("raw addresses are not accepted")

	// ErrNameNotFound is returned when the name has no address record or the lookup failed.
	ErrNameNotFound = errors.New("name not found")

	rawAddressPattern = regexp.MustCompile(`^0x[a-f0-9]{40}$`)
)

// NameService resolves human-readable names (Basenames, ENS) to addresses
type NameService struct {
	lookup interfaces.AddressLookup
	suffix string
	logger *zap.Logger
}

// NewNameService creates a NameService. Names without a dot get suffix appended after
// ens.NormalizeSuffix; an empty suffix falls back to ".base.eth".
func NewNameService(lookup interfaces.AddressLookup, suffix string, l *zap.Logger) *NameService {
	return &NameService{
		lookup: lookup,
		suffix: ens.NormalizeSuffix(suffix),
		logger: logger.ForComponent(l, logger.ComponentResolver),
	}
}

// Normalize trims and lowercases input, rejects literal addresses and qualifies bare labels.
func (s *NameService) Normalize(input string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	if rawAddressPattern.MatchString(name) {
		return "", ErrRawAddress
	}
	if name == "" {
		return "", ErrNameNotFound
	}
	if !strings.Contains(name, ".") {
		name += s.suffix
	}
	return name, nil
}

// Resolve normalizes input and looks up its address. Lookup failures are logged and
// reported as ErrNameNotFound.
func (s *NameService) Resolve(ctx context.Context, input string) (*business.ResolvedName, error) {
	name, err := s.Normalize(input)
	if err != nil {
		return nil, err
	}

	addr, err := s.lookup.LookupAddress(ctx, name)
	if err != nil {
		s.logger.Warn("Name resolution failed",
			zap.String("name", name),
			zap.Error(err))
		return nil, ErrNameNotFound
	}
	if addr == (common.Address{}) {
		s.logger.Info("Name has no address record", zap.String("name", name))
		return nil, ErrNameNotFound
	}

	return &business.ResolvedName{Name: name, Address: addr}, nil
}
