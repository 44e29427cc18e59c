package handlers

import (
	"net/http"

	"github.com/ethpandaops/getgas/services"
	"github.com/ethpandaops/getgas/session"
	"github.com/ethpandaops/getgas/templates"
	"github.com/ethpandaops/getgas/types/models"
	"github.com/ethpandaops/getgas/utils"
)

const (
	transferViewLanding    = "landing"
	transferViewStandalone = "transfer"
)

// Transfer will return the standalone "transfer" page using a go template
func Transfer(w http.ResponseWriter, r *http.Request) {
	sess, err := services.GlobalGasService.Sessions().Create(r.Context())
	if err != nil {
		handlePageError(w, r, err)
		return
	}
	renderTransfer(w, r, sess)
}

// TransferAction applies one action of the transfer form and renders the view it was posted from.
func TransferAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	sess, err := loadPageSession(r, r.PostForm.Get("session"))
	if err != nil {
		handlePageError(w, r, err)
		return
	}

	// select changes and button presses both post an action, the last one is the one triggered
	action := "update"
	if actions := r.PostForm["action"]; len(actions) > 0 {
		action = actions[len(actions)-1]
	}

	if transferred := applyTransferAction(r, sess, action); transferred {
		renderSuccess(w, r, sess)
		return
	}

	if r.PostForm.Get("view") == transferViewLanding {
		sess.ShowTransfer = true
		renderLanding(w, r, sess)
		return
	}
	renderTransfer(w, r, sess)
}

func applyTransferAction(r *http.Request, sess *session.PageSession, action string) bool {
	logger := services.GlobalGasService.Logger().WithField("session", sess.Id)
	ctx := r.Context()

	if _, ok := r.PostForm["amount"]; ok {
		sess.Transfer.SetAmount(r.PostForm.Get("amount"))
	}
	if _, ok := r.PostForm["destination"]; ok {
		sess.Transfer.SetDestinationAddress(r.PostForm.Get("destination"))
	}

	switch action {
	case "from":
		if chain, ok := session.ParseChain(r.PostForm.Get("from")); ok {
			sess.Transfer.SetFromChain(chain)
		}
	case "to":
		if chain, ok := session.ParseChain(r.PostForm.Get("to")); ok {
			sess.Transfer.SetToChain(chain)
		}
	case "swap":
		sess.Transfer.SwapDirection()
	case "max":
		sess.Transfer.UseMaxAmount(sess.Balances)
	case "signout":
		if err := sess.SignOut(ctx, services.NewBrowserWallet(sess, nil)); err != nil {
			logger.WithError(err).Warn("sign out failed")
		}
	case "submit":
		outcome, err := sess.SubmitTransfer(ctx, services.NewBrowserWallet(sess, nil), services.GlobalGasService.Submitter())
		if err != nil {
			logger.WithError(err).Warn("transfer submit failed")
		}
		return outcome == session.SubmitTransferred
	}

	return false
}

func renderTransfer(w http.ResponseWriter, r *http.Request, sess *session.PageSession) {
	var transferTemplateFiles = append(layoutTemplateFiles,
		"transfer/transfer.html",
		"_shared/transfer_form.html",
	)

	var transferTemplate = templates.GetTemplate(transferTemplateFiles...)

	w.Header().Set("Content-Type", "text/html")
	data := InitPageData(w, r, "transfer", "/transfer", "Transfer", transferTemplateFiles)
	data.Data = getTransferPageData(sess, transferViewStandalone)
	savePageSession(r, sess)

	if handleTemplateError(w, r, "transfer.go", "Transfer", "", transferTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getTransferPageData(sess *session.PageSession, view string) *models.TransferPageData {
	chains := &utils.Config.Chains
	eligibility := sess.Eligibility()

	pageData := &models.TransferPageData{
		SessionId:           sess.Id,
		View:                view,
		WalletConnected:     sess.Wallet.Connected,
		ConnectRequested:    sess.ConnectRequested,
		DisconnectRequested: sess.DisconnectRequested,
		Chains: []*models.TransferPageDataChain{
			{
				Key:     session.ChainA.String(),
				Name:    chains.ChainA.Name,
				ChainId: chains.ChainA.ChainId,
			},
			{
				Key:     session.ChainB.String(),
				Name:    chains.ChainB.Name,
				ChainId: chains.ChainB.ChainId,
			},
		},
		FromChain:          sess.Transfer.FromChain.String(),
		ToChain:            sess.Transfer.ToChain.String(),
		FromBalance:        sess.Balances.Of(sess.Transfer.FromChain),
		ToBalance:          sess.Balances.Of(sess.Transfer.ToChain),
		Amount:             sess.Transfer.Amount,
		DestinationAddress: sess.Transfer.DestinationAddress,
		GasCost:            "-",
		InterfaceFee:       "-",
		ReceiveText:        sess.Transfer.ReceiveText(),
		CanSubmit:          eligibility.CanSubmit,
		ButtonLabel:        eligibility.Label,
		// a disconnected wallet keeps the button usable to connect
		ButtonDisabled: sess.Wallet.Connected && !eligibility.CanSubmit,
	}

	if sess.Wallet.Connected {
		pageData.WalletAddress = sess.Wallet.Address
		pageData.WalletAddressShort = utils.FormatEthAddressShort(sess.Wallet.Address)
		pageData.WalletClientType = sess.Wallet.WalletClientType
		pageData.WalletIcon = utils.WalletIcon(sess.Wallet.WalletClientType)
	}

	return pageData
}
