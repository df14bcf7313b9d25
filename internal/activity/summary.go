package activity

import (
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
)

// SuccessfulOnly keeps the transactions whose isError flag is "0".
func SuccessfulOnly(txs []business.TransactionRecord) []business.TransactionRecord {
	out := make([]business.TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		if tx.Succeeded() {
			out = append(out, tx)
		}
	}
	return out
}

// Summarize builds the activity report from the merged L2/L1 history and the internal
// transfer list. Failed executions in external are ignored; internal is only counted.
func Summarize(external, internal []business.TransactionRecord, now time.Time, classifier *Classifier) business.UserStats {
	if classifier == nil {
		classifier = NewClassifier(DefaultClassificationRules())
	}

	successful := SuccessfulOnly(external)
	streaks := ComputeStreaks(ActiveDays(successful), now)
	counts := classifier.Tally(successful)

	return business.UserStats{
		TotalTransactions:    len(successful),
		UniqueDaysActive:     streaks.UniqueDays,
		LongestStreak:        streaks.Longest,
		CurrentStreak:        streaks.Current,
		ActivityPeriod:       streaks.ActivityPeriod,
		TokenSwaps:           counts.Swaps,
		BridgeTransactions:   counts.Bridges,
		DefiTransactions:     counts.DeFi,
		NamingInteractions:   counts.Naming,
		ContractsDeployed:    counts.ContractsDeployed,
		InternalTransactions: len(internal),
		TotalGasPaid:         FormatEther(TotalGasWei(successful)),
	}
}
