package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ethpandaops/getgas/session"
)

func TestBrowserWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("drops malformed accounts", func(t *testing.T) {
		sess := session.New("test")
		wallet := NewBrowserWallet(sess, []session.LinkedWallet{
			{Address: "0x123", WalletClientType: "metamask"},
			{Address: testAddress, WalletClientType: "metamask"},
		})

		wallets, err := wallet.ListWallets(ctx)
		if err != nil {
			t.Fatalf("ListWallets() error = %v", err)
		}
		if len(wallets) != 1 || wallets[0].Address != testAddress {
			t.Errorf("ListWallets() = %+v, want only %v", wallets, testAddress)
		}
	})

	t.Run("connect is requested from the browser", func(t *testing.T) {
		sess := session.New("test")
		sess.DisconnectRequested = true
		wallet := NewBrowserWallet(sess, nil)

		if err := wallet.Connect(ctx); err != nil {
			t.Fatalf("Connect() error = %v", err)
		}
		if !sess.ConnectRequested || sess.DisconnectRequested {
			t.Errorf("flags = connect %v, disconnect %v", sess.ConnectRequested, sess.DisconnectRequested)
		}

		// the browser answers with its accounts
		wallet = NewBrowserWallet(sess, []session.LinkedWallet{{Address: testAddress}})
		wallet.ListWallets(ctx)
		if sess.ConnectRequested {
			t.Error("connect request still pending after accounts were reported")
		}
	})

	t.Run("disconnect drops reported accounts", func(t *testing.T) {
		sess := session.New("test")
		wallet := NewBrowserWallet(sess, []session.LinkedWallet{{Address: testAddress}})

		if err := wallet.Disconnect(ctx); err != nil {
			t.Fatalf("Disconnect() error = %v", err)
		}
		if !sess.DisconnectRequested {
			t.Error("disconnect not requested")
		}
		wallets, _ := wallet.ListWallets(ctx)
		if len(wallets) != 0 {
			t.Errorf("ListWallets() after disconnect = %+v", wallets)
		}
	})
}

func TestMockSubmitter(t *testing.T) {
	logger, _ := test.NewNullLogger()
	submitter := NewMockSubmitter(logger)

	result, err := submitter.Submit(context.Background(), &session.TransferRequest{
		FromChain:   session.ChainA,
		ToChain:     session.ChainB,
		Amount:      "0.1",
		Sender:      testAddress,
		Destination: testAddress,
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.Success || result.TransactionHash != MockTransactionHash {
		t.Errorf("Submit() = %+v", result)
	}
}
