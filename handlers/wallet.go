package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/metrics"
	"github.com/ethpandaops/getgas/services"
	"github.com/ethpandaops/getgas/session"
)

// WalletAccountsRequest is posted by the browser whenever the injected wallet reports its accounts.
type WalletAccountsRequest struct {
	Session string                 `json:"session"`
	Wallets []session.LinkedWallet `json:"wallets"`
}

// WalletAccountsResponse tells the browser whether the rendered form is stale.
type WalletAccountsResponse struct {
	Changed   bool                  `json:"changed"`
	Connected bool                  `json:"connected"`
	Address   string                `json:"address"`
	Balances  session.ChainBalances `json:"balances"`
}

// WalletAccounts applies the reported wallet accounts to the page session.
func WalletAccounts(w http.ResponseWriter, r *http.Request) {
	var req WalletAccountsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64*1024)).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	gs := services.GlobalGasService
	response := &WalletAccountsResponse{}

	sess, err := gs.Sessions().Load(r.Context(), req.Session)
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		// the page reloads its form and gets a new session
		response.Changed = true
		writeJSON(w, r, response)
		return
	case err != nil:
		logrus.WithError(err).Error("error loading page session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	wallet := services.NewBrowserWallet(sess, req.Wallets)
	wallets, err := wallet.ListWallets(r.Context())
	if err != nil {
		logrus.WithError(err).Warn("error listing wallets")
	}

	transition := sess.ApplyWallets(r.Context(), wallets, gs.Balances())
	metrics.WalletTransitions.WithLabelValues(transition.String()).Inc()

	if err := gs.Sessions().Save(r.Context(), sess); err != nil {
		logrus.WithError(err).WithField("session", sess.Id).Error("error saving page session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response.Changed = transition != session.WalletUnchanged
	response.Connected = sess.Wallet.Connected
	response.Address = sess.Wallet.Address
	response.Balances = sess.Balances
	writeJSON(w, r, response)
}

func writeJSON(w http.ResponseWriter, r *http.Request, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logrus.WithError(err).Errorf("error serializing json data for %v route", r.URL.String())
		http.Error(w, "Internal server error", http.StatusServiceUnavailable)
	}
}
