package responses

import (
	"net/url"
	"strconv"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
)

// ResolveResponse is the result of a name lookup
type ResolveResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Card holds the display strings a social card renderer needs.
type Card struct {
	Name         string `json:"name"`
	Transactions string `json:"tx"`
	Gas          string `json:"gas"`
	Contracts    string `json:"contracts"`
	Streak       string `json:"streak"`
	ActiveDays   string `json:"active"`
	// Query is the card fields encoded as URL query parameters.
	Query string `json:"query"`
}

// StatsResponse is the body of GET /api/v1/stats/:name
type StatsResponse struct {
	Name    string              `json:"name"`
	Address string              `json:"address"`
	Stats   *business.UserStats `json:"stats"`
	Card    Card                `json:"card"`
}

// NewCard formats stats for display under name.
func NewCard(name string, stats *business.UserStats) Card {
	card := Card{
		Name:         name,
		Transactions: strconv.Itoa(stats.TotalTransactions),
		Gas:          stats.TotalGasPaid,
		Contracts:    strconv.Itoa(stats.ContractsDeployed),
		Streak:       strconv.Itoa(stats.LongestStreak),
		ActiveDays:   strconv.Itoa(stats.UniqueDaysActive),
	}
	q := url.Values{}
	q.Set("name", card.Name)
	q.Set("tx", card.Transactions)
	q.Set("gas", card.Gas)
	q.Set("contracts", card.Contracts)
	q.Set("streak", card.Streak)
	q.Set("active", card.ActiveDays)
	card.Query = q.Encode()
	return card
}

// NewStatsResponse builds the stats payload for a resolved name.
func NewStatsResponse(resolved *business.ResolvedName, stats *business.UserStats) StatsResponse {
	return StatsResponse{
		Name:    resolved.Name,
		Address: resolved.Address.Hex(),
		Stats:   stats,
		Card:    NewCard(resolved.Name, stats),
	}
}
