package responses_test

import (
	"testing"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/api/responses"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestNewStatsResponse(t *testing.T) {
	resolved := &business.ResolvedName{
		Name:    "jesse.base.eth",
		Address: common.HexToAddress("0x849151d7d0bf1f34b70d5cad5149d28cc2308bf1"),
	}
	stats := &business.UserStats{
		TotalTransactions: 42,
		UniqueDaysActive:  7,
		LongestStreak:     3,
		ContractsDeployed: 2,
		TotalGasPaid:      "0.0123",
	}

	got := responses.NewStatsResponse(resolved, stats)

	assert.Equal(t, "jesse.base.eth", got.Name)
	assert.Equal(t, resolved.Address.Hex(), got.Address)
	assert.Same(t, stats, got.Stats)
	assert.Equal(t, responses.Card{
		Name:         "jesse.base.eth",
		Transactions: "42",
		Gas:          "0.0123",
		Contracts:    "2",
		Streak:       "3",
		ActiveDays:   "7",
		Query:        "active=7&contracts=2&gas=0.0123&name=jesse.base.eth&streak=3&tx=42",
	}, got.Card)
}
