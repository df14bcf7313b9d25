package business

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/math"
)

// TransactionRecord is one explorer transaction or internal transfer as returned by
// Etherscan-compatible `txlist` / `txlistinternal` endpoints. All numeric fields are
// kept in their wire form (decimal strings).
type TransactionRecord struct {
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Input           string `json:"input,omitempty"`
	FunctionName    string `json:"functionName,omitempty"`
	IsError         string `json:"isError"`
	ContractAddress string `json:"contractAddress,omitempty"`
	GasUsed         string `json:"gasUsed"`
	GasPrice        string `json:"gasPrice"`
	L1FeesPaid      string `json:"l1FeesPaid,omitempty"`
}

// Succeeded reports whether the explorer flagged the execution as successful.
// Records without an explicit "0" flag are treated as failed.
func (t TransactionRecord) Succeeded() bool {
	return t.IsError == "0"
}

// Time returns the block time of the transaction.
func (t TransactionRecord) Time() (time.Time, bool) {
	secs, err := strconv.ParseInt(t.TimeStamp, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(secs, 0).UTC(), true
}

// CreatesContract reports whether the transaction deployed a contract.
func (t TransactionRecord) CreatesContract() bool {
	return t.To == "" || t.ContractAddress != ""
}

// ExecutionFee returns gasUsed * gasPrice. ok is false when either value is absent or unparsable.
func (t TransactionRecord) ExecutionFee() (fee *big.Int, ok bool) {
	if t.GasUsed == "" || t.GasPrice == "" {
		return nil, false
	}
	gasUsed, ok := math.ParseBig256(t.GasUsed)
	if !ok {
		return nil, false
	}
	gasPrice, ok := math.ParseBig256(t.GasPrice)
	if !ok {
		return nil, false
	}
	return new(big.Int).Mul(gasUsed, gasPrice), true
}

// L1Fee returns the L1 settlement fee paid by an L2 transaction, if reported.
func (t TransactionRecord) L1Fee() (*big.Int, bool) {
	if t.L1FeesPaid == "" {
		return nil, false
	}
	return math.ParseBig256(t.L1FeesPaid)
}
