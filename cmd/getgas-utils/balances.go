package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/getgas/clients/execution/rpc"
	"github.com/ethpandaops/getgas/services"
	"github.com/ethpandaops/getgas/types"
	"github.com/ethpandaops/getgas/utils"
)

var balancesCmd = &cobra.Command{
	Use:   "balances <address>",
	Short: "Show the native balances of an address",
	Long:  "Query the native ETH balance of an address on both configured chains, the same way the transfer form does",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showBalances(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(balancesCmd)

	balancesCmd.Flags().StringP("config", "", "", "Path to getgas config file, if empty the default chains are used")
	balancesCmd.Flags().DurationP("timeout", "t", 0, "Balance query timeout (overrides config)")
	balancesCmd.Flags().BoolP("debug", "d", false, "Enable debug logging")
}

func showBalances(cmd *cobra.Command, address string) error {
	configPath, _ := cmd.Flags().GetString("config")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	debug, _ := cmd.Flags().GetBool("debug")

	if !utils.IsValidAddress(address) {
		return fmt.Errorf("invalid address %q", address)
	}

	cfg := &types.Config{}
	if err := utils.ReadConfig(cfg, configPath); err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}
	utils.Config = cfg

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	if timeout == 0 {
		timeout = cfg.Chains.BalanceTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout+30*time.Second)
	defer cancel()

	chainA := rpc.NewExecutionClient(cfg.Chains.ChainA.Name, cfg.Chains.ChainA.ChainId, cfg.Chains.ChainA.RpcUrl, cfg.Chains.ChainA.Headers, logger)
	if err := chainA.Initialize(ctx); err != nil {
		return err
	}
	defer chainA.Close()

	chainB := rpc.NewExecutionClient(cfg.Chains.ChainB.Name, cfg.Chains.ChainB.ChainId, cfg.Chains.ChainB.RpcUrl, cfg.Chains.ChainB.Headers, logger)
	if err := chainB.Initialize(ctx); err != nil {
		return err
	}
	defer chainB.Close()

	reader := services.NewBalanceReader(chainA, chainB, timeout, logger)
	balances := reader.FetchBalances(ctx, address)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Balances of %s\n", address)
	fmt.Fprintf(out, "%-12s %s ETH\n", cfg.Chains.ChainA.Name+":", balances.ChainA)
	fmt.Fprintf(out, "%-12s %s ETH\n", cfg.Chains.ChainB.Name+":", balances.ChainB)
	return nil
}
