package business

// UserStats is the aggregate activity report for one address. It is built per request
// and never stored.
type UserStats struct {
	TotalTransactions    int    `json:"total_transactions"`
	UniqueDaysActive     int    `json:"unique_days_active"`
	LongestStreak        int    `json:"longest_streak"`
	CurrentStreak        int    `json:"current_streak"`
	ActivityPeriod       int    `json:"activity_period"`
	TokenSwaps           int    `json:"token_swaps"`
	BridgeTransactions   int    `json:"bridge_transactions"`
	DefiTransactions     int    `json:"defi_transactions"`
	NamingInteractions   int    `json:"naming_interactions"`
	ContractsDeployed    int    `json:"contracts_deployed"`
	InternalTransactions int    `json:"internal_transactions"`
	TotalGasPaid         string `json:"total_gas_paid"`
}
