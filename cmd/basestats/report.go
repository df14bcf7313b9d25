package main

import (
	"fmt"
	"strings"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type reportRow struct {
	label string
	value string
}

func reportRows(stats *business.UserStats) []reportRow {
	return []reportRow{
		{"Transactions", fmt.Sprint(stats.TotalTransactions)},
		{"Unique days active", fmt.Sprint(stats.UniqueDaysActive)},
		{"Longest streak", fmt.Sprintf("%d days", stats.LongestStreak)},
		{"Current streak", fmt.Sprintf("%d days", stats.CurrentStreak)},
		{"Activity period", fmt.Sprintf("%d days", stats.ActivityPeriod)},
		{"Token swaps", fmt.Sprint(stats.TokenSwaps)},
		{"Bridge transactions", fmt.Sprint(stats.BridgeTransactions)},
		{"DeFi transactions", fmt.Sprint(stats.DefiTransactions)},
		{"Naming interactions", fmt.Sprint(stats.NamingInteractions)},
		{"Contracts deployed", fmt.Sprint(stats.ContractsDeployed)},
		{"Internal transactions", fmt.Sprint(stats.InternalTransactions)},
		{"Total gas paid", stats.TotalGasPaid + " ETH"},
	}
}

// renderReport lays out the stats as a bordered two-column table.
func renderReport(resolved *business.ResolvedName, stats *business.UserStats) string {
	rows := reportRows(stats)

	width := 0
	for _, row := range rows {
		if len(row.label) > width {
			width = len(row.label)
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := labelStyle.Render(row.label + strings.Repeat(" ", width-len(row.label)))
		lines = append(lines, label+"  "+valueStyle.Render(row.value))
	}

	header := titleStyle.Render(resolved.Name) + "\n" + labelStyle.Render(resolved.Address.Hex())
	return boxStyle.Render(header + "\n\n" + strings.Join(lines, "\n"))
}
