package services

import (
	"context"

	"github.com/ethpandaops/getgas/session"
	"github.com/ethpandaops/getgas/utils"
)

// BrowserWallet is the server side of the wallet provider. The wallet itself runs in the
// browser: it reports its accounts to the server and acts on the connect / disconnect requests
// rendered into the next page.
type BrowserWallet struct {
	sess     *session.PageSession
	reported []session.LinkedWallet
}

// NewBrowserWallet wraps the accounts reported by the browser. Entries with malformed addresses are dropped.
func NewBrowserWallet(sess *session.PageSession, reported []session.LinkedWallet) *BrowserWallet {
	wallets := make([]session.LinkedWallet, 0, len(reported))
	for _, wallet := range reported {
		if utils.IsValidAddress(wallet.Address) {
			wallets = append(wallets, wallet)
		}
	}

	return &BrowserWallet{
		sess:     sess,
		reported: wallets,
	}
}

func (bw *BrowserWallet) Connect(ctx context.Context) error {
	bw.sess.ConnectRequested = true
	bw.sess.DisconnectRequested = false
	return nil
}

func (bw *BrowserWallet) ListWallets(ctx context.Context) ([]session.LinkedWallet, error) {
	if len(bw.reported) > 0 {
		// the browser delivered the accounts we asked for
		bw.sess.ConnectRequested = false
	}
	return bw.reported, nil
}

func (bw *BrowserWallet) Disconnect(ctx context.Context) error {
	bw.reported = nil
	bw.sess.ConnectRequested = false
	bw.sess.DisconnectRequested = true
	return nil
}
