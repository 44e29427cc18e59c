package session

import (
	"strings"
)

// WalletTransition describes how a reported account list changed the wallet session.
type WalletTransition uint8

const (
	WalletUnchanged WalletTransition = iota
	WalletConnected
	WalletAccountChanged
	WalletDisconnected
)

func (t WalletTransition) String() string {
	switch t {
	case WalletConnected:
		return "connected"
	case WalletAccountChanged:
		return "account_changed"
	case WalletDisconnected:
		return "disconnected"
	default:
		return "unchanged"
	}
}

// NeedsBalanceFetch is true when the session now points to a different connected account.
func (t WalletTransition) NeedsBalanceFetch() bool {
	return t == WalletConnected || t == WalletAccountChanged
}

// WalletSession is either disconnected or connected to exactly one account.
// Address is set iff Connected is true.
type WalletSession struct {
	Connected        bool   `json:"connected"`
	Address          string `json:"address,omitempty"`
	WalletClientType string `json:"walletClientType,omitempty"`
}

// ApplyWallets moves the session according to the account list reported by the wallet provider.
// The first reported account becomes the session address.
func (ws *WalletSession) ApplyWallets(wallets []LinkedWallet) WalletTransition {
	if len(wallets) == 0 {
		if !ws.Connected {
			return WalletUnchanged
		}
		ws.Reset()
		return WalletDisconnected
	}

	first := wallets[0]
	transition := WalletUnchanged
	switch {
	case !ws.Connected:
		transition = WalletConnected
	case !strings.EqualFold(ws.Address, first.Address):
		transition = WalletAccountChanged
	}

	ws.Connected = true
	ws.Address = first.Address
	ws.WalletClientType = first.WalletClientType
	return transition
}

// Reset returns the session to the disconnected state.
func (ws *WalletSession) Reset() {
	*ws = WalletSession{}
}
