package session

import (
	"testing"
)

func TestWalletSessionApplyWallets(t *testing.T) {
	const (
		addressA = "0x1111111111111111111111111111111111111111"
		addressB = "0x2222222222222222222222222222222222222222"
	)

	tests := []struct {
		name           string
		initial        WalletSession
		wallets        []LinkedWallet
		wantTransition WalletTransition
		wantConnected  bool
		wantAddress    string
	}{
		{
			name:           "stays disconnected without wallets",
			wallets:        nil,
			wantTransition: WalletUnchanged,
		},
		{
			name:           "connects to first wallet",
			wallets:        []LinkedWallet{{Address: addressA, WalletClientType: "metamask"}, {Address: addressB}},
			wantTransition: WalletConnected,
			wantConnected:  true,
			wantAddress:    addressA,
		},
		{
			name:           "same account is unchanged",
			initial:        WalletSession{Connected: true, Address: addressA},
			wallets:        []LinkedWallet{{Address: addressA}},
			wantTransition: WalletUnchanged,
			wantConnected:  true,
			wantAddress:    addressA,
		},
		{
			name:           "account compare ignores case",
			initial:        WalletSession{Connected: true, Address: "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"},
			wallets:        []LinkedWallet{{Address: "0xABCDEFABCDEFABCDEFABCDEFABCDEFABCDEFABCD"}},
			wantTransition: WalletUnchanged,
			wantConnected:  true,
			wantAddress:    "0xABCDEFABCDEFABCDEFABCDEFABCDEFABCDEFABCD",
		},
		{
			name:           "switching account",
			initial:        WalletSession{Connected: true, Address: addressA},
			wallets:        []LinkedWallet{{Address: addressB}},
			wantTransition: WalletAccountChanged,
			wantConnected:  true,
			wantAddress:    addressB,
		},
		{
			name:           "empty list disconnects",
			initial:        WalletSession{Connected: true, Address: addressA, WalletClientType: "metamask"},
			wallets:        []LinkedWallet{},
			wantTransition: WalletDisconnected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := tt.initial
			transition := ws.ApplyWallets(tt.wallets)

			if transition != tt.wantTransition {
				t.Errorf("ApplyWallets() = %v, want %v", transition, tt.wantTransition)
			}
			if ws.Connected != tt.wantConnected {
				t.Errorf("Connected = %v, want %v", ws.Connected, tt.wantConnected)
			}
			if ws.Address != tt.wantAddress {
				t.Errorf("Address = %q, want %q", ws.Address, tt.wantAddress)
			}
			if !ws.Connected && ws.WalletClientType != "" {
				t.Errorf("disconnected session kept wallet client type %q", ws.WalletClientType)
			}
		})
	}
}

func TestWalletTransitionNeedsBalanceFetch(t *testing.T) {
	tests := []struct {
		transition WalletTransition
		want       bool
	}{
		{WalletUnchanged, false},
		{WalletConnected, true},
		{WalletAccountChanged, true},
		{WalletDisconnected, false},
	}

	for _, tt := range tests {
		t.Run(tt.transition.String(), func(t *testing.T) {
			if got := tt.transition.NeedsBalanceFetch(); got != tt.want {
				t.Errorf("NeedsBalanceFetch() = %v, want %v", got, tt.want)
			}
		})
	}
}
