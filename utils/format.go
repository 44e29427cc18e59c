package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const etherDecimals = 18

// FormatEther converts a wei amount to a decimal ETH string without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -etherDecimals).String()
}

// ParseAmount parses a user entered ETH amount. Empty or malformed input is reported as not ok.
func ParseAmount(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// FormatEthAddressShort shortens an address to 0x1234...abcd
func FormatEthAddressShort(address string) string {
	if len(address) <= 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}

// WalletIcon returns the icon path for a wallet client type reported by the wallet provider.
func WalletIcon(walletClientType string) string {
	switch strings.ToLower(walletClientType) {
	case "metamask", "injected":
		return "/wallet-icons/metamask.svg"
	case "coinbase_wallet", "coinbasewallet":
		return "/wallet-icons/coinbase.svg"
	case "walletconnect":
		return "/wallet-icons/walletconnect.svg"
	case "embedded":
		return "/wallet-icons/privy.svg"
	case "safe":
		return "/wallet-icons/safe.svg"
	default:
		return "/wallet-icons/wallet.svg"
	}
}

// FormatExplorerTxLink fills a transaction hash into an explorer url template.
func FormatExplorerTxLink(urlTemplate string, txHash string) string {
	if urlTemplate == "" || txHash == "" {
		return ""
	}
	return fmt.Sprintf(urlTemplate, txHash)
}
