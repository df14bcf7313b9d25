package activity_test

import (
	"testing"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/activity"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	now := day(3).Add(15 * time.Hour)

	swap := txAt(day(0).Add(2 * time.Hour))
	swap.FunctionName = "swapExactTokensForTokens(uint256,uint256,address[],address,uint256)"
	swap.GasUsed = "21000"
	swap.GasPrice = "1000000000"

	deploy := txAt(day(1))
	deploy.To = ""
	deploy.ContractAddress = "0xdeadbeef"
	deploy.GasUsed = "100000"
	deploy.GasPrice = "2000000000"
	deploy.L1FeesPaid = "50000000000000"

	failed := txAt(day(2))
	failed.IsError = "1"
	failed.FunctionName = "bridgeETHTo(address,uint32,bytes)"
	failed.GasUsed = "21000"
	failed.GasPrice = "1000000000"

	register := txAt(day(3))
	register.FunctionName = "register((string,address,uint256,address,bytes[],bool))"

	internal := []business.TransactionRecord{{Hash: "0x1"}, {Hash: "0x2"}, {Hash: "0x3"}}

	got := activity.Summarize([]business.TransactionRecord{swap, deploy, failed, register}, internal, now, nil)

	assert.Equal(t, business.UserStats{
		TotalTransactions:    3,
		UniqueDaysActive:     3,
		LongestStreak:        2,
		CurrentStreak:        1,
		ActivityPeriod:       3,
		TokenSwaps:           1,
		BridgeTransactions:   0,
		DefiTransactions:     0,
		NamingInteractions:   1,
		ContractsDeployed:    1,
		InternalTransactions: 3,
		// 21000*1e9 + 100000*2e9 + 5e13 = 2.71e14 wei
		TotalGasPaid: "0.0003",
	}, got)
}

func TestSummarize_NoActivity(t *testing.T) {
	got := activity.Summarize(nil, nil, dayZero, nil)

	assert.Equal(t, business.UserStats{TotalGasPaid: "0.0000"}, got)
}

func TestSuccessfulOnly(t *testing.T) {
	txs := []business.TransactionRecord{
		{Hash: "0x1", IsError: "0"},
		{Hash: "0x2", IsError: "1"},
		{Hash: "0x3", IsError: ""},
	}

	got := activity.SuccessfulOnly(txs)

	assert.Len(t, got, 1)
	assert.Equal(t, "0x1", got[0].Hash)
}
