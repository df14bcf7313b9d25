package activity

import (
	"math/big"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/shopspring/decimal"
)

const (
	weiDecimals     = 18
	gasDisplayScale = 4
)

// TotalGasWei sums gasUsed*gasPrice plus any L1 settlement fee over txs, in wei.
// Transactions missing gasUsed or gasPrice contribute nothing.
func TotalGasWei(txs []business.TransactionRecord) *big.Int {
	total := new(big.Int)
	for _, tx := range txs {
		fee, ok := tx.ExecutionFee()
		if !ok {
			continue
		}
		total.Add(total, fee)
		if l1, ok := tx.L1Fee(); ok {
			total.Add(total, l1)
		}
	}
	return total
}

// FormatEther renders a wei amount in ETH with exactly four decimals, rounding half away from zero.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		wei = new(big.Int)
	}
	return decimal.NewFromBigInt(wei, -weiDecimals).StringFixed(gasDisplayScale)
}
