package services

import (
	"context"
	"strings"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/activity"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/client/explorer"
	httpClient "github.com/Ashutosh-Ahirwar/base-activity/internal/client/http"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/constants"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/interfaces"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrMissingSourceURL is returned before any request is made when an explorer base URL is unset.
var ErrMissingSourceURL = errors.New("explorer source URLs are not configured")

// SourceURLs are the explorer base URLs; the address is appended verbatim to each.
type SourceURLs struct {
	Base     string
	Eth      string
	Internal string
}

func (u SourceURLs) missing() []string {
	var keys []string
	if strings.TrimSpace(u.Base) == "" {
		keys = append(keys, "BASE_API_URL")
	}
	if strings.TrimSpace(u.Eth) == "" {
		keys = append(keys, "ETH_API_URL")
	}
	if strings.TrimSpace(u.Internal) == "" {
		keys = append(keys, "BASE_INTERNAL_API_URL")
	}
	return keys
}

// StatsOption configures a StatsService.
type StatsOption func(*StatsService)

// WithSourcePause sets the wait between consecutive source fetches.
func WithSourcePause(d time.Duration) StatsOption {
	return func(s *StatsService) {
		s.pause = d
	}
}

// WithClassificationRules overrides the default keyword rules.
func WithClassificationRules(rules activity.ClassificationRules) StatsOption {
	return func(s *StatsService) {
		s.classifier = activity.NewClassifier(rules)
	}
}

// WithClock sets the time source used for "today".
func WithClock(now func() time.Time) StatsOption {
	return func(s *StatsService) {
		s.now = now
	}
}

// WithStatsLogger sets the service logger.
func WithStatsLogger(l *zap.Logger) StatsOption {
	return func(s *StatsService) {
		s.logger = l
	}
}

// StatsService aggregates wallet activity from the Base, Ethereum and internal-transfer explorers
type StatsService struct {
	fetcher    interfaces.ExplorerFetcher
	sources    SourceURLs
	pause      time.Duration
	classifier *activity.Classifier
	now        func() time.Time
	logger     *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(fetcher interfaces.ExplorerFetcher, sources SourceURLs, opts ...StatsOption) *StatsService {
	s := &StatsService{
		fetcher:    fetcher,
		sources:    sources,
		pause:      constants.DefaultSourcePause,
		classifier: activity.NewClassifier(activity.DefaultClassificationRules()),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logger.ForComponent(s.logger, logger.ComponentStats)
	return s
}

type source struct {
	name string
	url  string
}

// GetUserStats fetches the three sources one after another and computes the report.
// Exhausting retries on any source fails the whole call; no partial stats are returned.
func (s *StatsService) GetUserStats(ctx context.Context, address common.Address) (*business.UserStats, error) {
	if missing := s.sources.missing(); len(missing) > 0 {
		s.logger.Error("Explorer sources are not configured", zap.Strings("missing", missing))
		return nil, errors.Wrapf(ErrMissingSourceURL, "missing %s", strings.Join(missing, ", "))
	}

	addr := address.Hex()
	sources := []source{
		{name: "base", url: s.sources.Base + addr},
		{name: "ethereum", url: s.sources.Eth + addr},
		{name: "internal", url: s.sources.Internal + addr},
	}

	lists := make([][]business.TransactionRecord, len(sources))
	for i, src := range sources {
		if i > 0 {
			if err := s.wait(ctx); err != nil {
				return nil, errors.Wrap(err, "stats aggregation cancelled")
			}
		}
		txs, err := s.fetchSource(ctx, src)
		if err != nil {
			return nil, err
		}
		lists[i] = txs
	}

	external := make([]business.TransactionRecord, 0, len(lists[0])+len(lists[1]))
	external = append(external, lists[0]...)
	external = append(external, lists[1]...)

	stats := activity.Summarize(external, lists[2], s.now(), s.classifier)

	s.logger.Info("Computed user stats",
		zap.String("address", addr),
		zap.Int("base_transactions", len(lists[0])),
		zap.Int("eth_transactions", len(lists[1])),
		zap.Int("internal_transactions", len(lists[2])),
		zap.Int("successful_transactions", stats.TotalTransactions))

	return &stats, nil
}

// fetchSource returns the transactions of one source. Empty and malformed results yield
// an empty list; only a failed fetch is an error.
func (s *StatsService) fetchSource(ctx context.Context, src source) ([]business.TransactionRecord, error) {
	result, err := s.fetcher.Fetch(ctx, src.url)
	if err != nil {
		s.logger.Error("Failed to fetch explorer source",
			zap.String("source", src.name),
			zap.String("url", httpClient.RedactURL(src.url)),
			zap.Error(err))
		return nil, errors.Wrapf(err, "failed to fetch %s transactions", src.name)
	}

	switch result.Kind {
	case explorer.ResultSuccess:
	case explorer.ResultFailure:
		reason := result.Reason
		if reason == nil {
			reason = errors.New("fetch failed")
		}
		return nil, errors.Wrapf(reason, "failed to fetch %s transactions", src.name)
	default:
		return nil, nil
	}

	txs, err := result.Transactions()
	if err != nil {
		s.logger.Warn("Ignoring malformed explorer result",
			zap.String("source", src.name),
			zap.Error(err))
		return nil, nil
	}
	return txs, nil
}

func (s *StatsService) wait(ctx context.Context) error {
	if s.pause <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.pause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
