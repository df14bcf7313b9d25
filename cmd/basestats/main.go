package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/bootstrap"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/config"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "basestats",
	Short: "Show onchain activity stats for a Basename or ENS name",
	Long: `basestats resolves a Basename (or any ENS name) and summarizes the owner's
transaction history on Base and Ethereum mainnet: streaks, active days,
categorized interactions and total gas paid.

Explorer endpoints are read from BASE_API_URL, ETH_API_URL and
BASE_INTERNAL_API_URL (or a YAML file named by CONFIG_PATH).`,
	SilenceUsage: true,
}

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Resolve a name and print its activity report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, cfg *config.Config, svcs *bootstrap.Services) error {
			resolved, err := svcs.Names.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			stats, err := svcs.Stats.GetUserStats(ctx, resolved.Address)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(resolved, stats))
			return nil
		})
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Print the address a name resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, _ *config.Config, svcs *bootstrap.Services) error {
			resolved, err := svcs.Names.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resolved.Name, resolved.Address.Hex())
			return nil
		})
	},
}

// withServices loads config, wires the services and runs fn under STATS_TIMEOUT.
func withServices(parent context.Context, fn func(context.Context, *config.Config, *bootstrap.Services) error) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := bootstrap.LoadConfig(parent)
	if err != nil {
		return err
	}
	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(parent, cfg.StatsTimeout)
	defer cancel()

	svcs, err := bootstrap.NewServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svcs.Close()

	return fn(ctx, cfg, svcs)
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resolveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
