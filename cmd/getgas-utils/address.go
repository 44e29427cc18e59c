package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/ethpandaops/getgas/utils"
)

var addressCmd = &cobra.Command{
	Use:   "address <address>",
	Short: "Check an EVM address",
	Long:  "Check whether an address is accepted as transfer destination and print its checksummed form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkAddress(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
}

func checkAddress(cmd *cobra.Command, address string) error {
	if !utils.IsValidAddress(address) {
		return fmt.Errorf("invalid address %q: expected 0x followed by 40 hex characters", address)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Address:  %s\n", address)
	fmt.Fprintf(out, "Checksum: %s\n", common.HexToAddress(address).Hex())
	fmt.Fprintf(out, "Short:    %s\n", utils.FormatEthAddressShort(address))
	return nil
}
