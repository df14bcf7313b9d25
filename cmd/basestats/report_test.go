package main

import (
	"testing"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	resolved := &business.ResolvedName{
		Name:    "jesse.base.eth",
		Address: common.HexToAddress("0x849151d7D0bF1F34b70d5caD5149D28CC2308bf1"),
	}
	stats := &business.UserStats{
		TotalTransactions: 42,
		LongestStreak:     3,
		TokenSwaps:        7,
		TotalGasPaid:      "0.0123",
	}

	out := renderReport(resolved, stats)

	assert.Contains(t, out, "jesse.base.eth")
	assert.Contains(t, out, resolved.Address.Hex())
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "0.0123 ETH")
	assert.Contains(t, out, "Internal transactions")
}

func TestReportRows(t *testing.T) {
	rows := reportRows(&business.UserStats{CurrentStreak: 2, TotalGasPaid: "0.0000"})

	assert.Len(t, rows, 12)
	assert.Equal(t, reportRow{"Current streak", "2 days"}, rows[3])
	assert.Equal(t, reportRow{"Total gas paid", "0.0000 ETH"}, rows[11])
}

func TestCommandsRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "stats")
	assert.Contains(t, names, "resolve")
}
