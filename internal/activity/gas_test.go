package activity_test

import (
	"math/big"
	"testing"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/activity"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
	"github.com/stretchr/testify/assert"
)

func repeatTx(tx business.TransactionRecord, n int) []business.TransactionRecord {
	out := make([]business.TransactionRecord, n)
	for i := range out {
		out[i] = tx
	}
	return out
}

func TestTotalGasWei(t *testing.T) {
	simple := business.TransactionRecord{GasUsed: "21000", GasPrice: "1000000000"}

	t.Run("single transfer", func(t *testing.T) {
		assert.Equal(t, "21000000000000", activity.TotalGasWei([]business.TransactionRecord{simple}).String())
	})

	t.Run("exact summation across many transactions", func(t *testing.T) {
		total := activity.TotalGasWei(repeatTx(simple, 1000))

		expected := new(big.Int).Mul(big.NewInt(21_000_000_000_000), big.NewInt(1000))
		assert.Equal(t, 0, expected.Cmp(total))
		assert.Equal(t, "0.0210", activity.FormatEther(total))
	})

	t.Run("l1 fee is added", func(t *testing.T) {
		tx := business.TransactionRecord{GasUsed: "100000", GasPrice: "5000000", L1FeesPaid: "123456789"}
		assert.Equal(t, "500123456789", activity.TotalGasWei([]business.TransactionRecord{tx}).String())
	})

	t.Run("missing gas fields contribute nothing including l1 fee", func(t *testing.T) {
		txs := []business.TransactionRecord{
			{GasUsed: "", GasPrice: "1", L1FeesPaid: "999"},
			{GasUsed: "1", GasPrice: ""},
			{GasUsed: "garbage", GasPrice: "1"},
		}
		assert.Equal(t, "0", activity.TotalGasWei(txs).String())
	})

	t.Run("values above uint64 stay exact", func(t *testing.T) {
		tx := business.TransactionRecord{GasUsed: "30000000", GasPrice: "1000000000000000"}
		assert.Equal(t, "30000000000000000000000", activity.TotalGasWei([]business.TransactionRecord{tx}).String())
	})
}

func TestFormatEther(t *testing.T) {
	tests := []struct {
		name string
		wei  string
		want string
	}{
		{name: "zero", wei: "0", want: "0.0000"},
		{name: "below display precision", wei: "21000000000000", want: "0.0000"},
		{name: "rounds half up", wei: "50000000000000", want: "0.0001"},
		{name: "rounds down", wei: "49999999999999", want: "0.0000"},
		{name: "one ether", wei: "1000000000000000000", want: "1.0000"},
		{name: "fractional", wei: "1234567890000000000", want: "1.2346"},
		{name: "large", wei: "123456789000000000000000", want: "123456.7890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wei, ok := new(big.Int).SetString(tt.wei, 10)
			assert.True(t, ok)
			assert.Equal(t, tt.want, activity.FormatEther(wei))
		})
	}
}

func TestFormatEther_Nil(t *testing.T) {
	assert.Equal(t, "0.0000", activity.FormatEther(nil))
}
