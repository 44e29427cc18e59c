package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/services"
	"github.com/ethpandaops/getgas/session"
	"github.com/ethpandaops/getgas/templates"
	"github.com/ethpandaops/getgas/types/models"
	"github.com/ethpandaops/getgas/utils"
)

// verificationWidget is implemented by verifiers that need app parameters in the browser.
type verificationWidget interface {
	AppId() string
	Action() string
}

// Landing will return the main "landing" page using a go template
func Landing(w http.ResponseWriter, r *http.Request) {
	sess, err := services.GlobalGasService.Sessions().Create(r.Context())
	if err != nil {
		handlePageError(w, r, err)
		return
	}
	renderLanding(w, r, sess)
}

// Verify receives the proof collected by the verification widget.
func Verify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	sess, err := loadPageSession(r, r.PostForm.Get("session"))
	if err != nil {
		handlePageError(w, r, err)
		return
	}

	if !sess.Verification.Verified {
		proof := &session.VerificationProof{
			MerkleRoot:        r.PostForm.Get("merkle_root"),
			NullifierHash:     r.PostForm.Get("nullifier_hash"),
			Proof:             r.PostForm.Get("proof"),
			VerificationLevel: r.PostForm.Get("verification_level"),
		}
		err = sess.Verification.Verify(r.Context(), services.GlobalGasService.Verifier(), proof, sess.ClaimAddress)
		if err != nil {
			services.GlobalGasService.Logger().WithError(err).WithField("session", sess.Id).Info("identity verification failed")
		}
	}

	renderLanding(w, r, sess)
}

// Claim handles the address form shown after a successful verification.
func Claim(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	sess, err := loadPageSession(r, r.PostForm.Get("session"))
	if err != nil {
		handlePageError(w, r, err)
		return
	}

	err = sess.SubmitClaim(r.Context(), r.PostForm.Get("address"), services.GlobalGasService.Submitter())
	switch {
	case errors.Is(err, session.ErrNotVerified):
		// the verify card is rendered again
	case err != nil:
		utils.LogError(err, "claim submission failed", 0, map[string]interface{}{"session": sess.Id})
	case sess.Result.Success:
		renderSuccess(w, r, sess)
		return
	}

	renderLanding(w, r, sess)
}

// Panel toggles between the verify card and the transfer form on the landing page.
func Panel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	sess, err := loadPageSession(r, r.PostForm.Get("session"))
	if err != nil {
		handlePageError(w, r, err)
		return
	}

	show, err := strconv.ParseBool(r.PostForm.Get("show"))
	if err == nil {
		sess.ShowTransfer = show
	}

	renderLanding(w, r, sess)
}

func renderLanding(w http.ResponseWriter, r *http.Request, sess *session.PageSession) {
	var landingTemplateFiles = append(layoutTemplateFiles,
		"landing/landing.html",
		"_shared/transfer_form.html",
	)

	var landingTemplate = templates.GetTemplate(landingTemplateFiles...)

	w.Header().Set("Content-Type", "text/html")
	data := InitPageData(w, r, "landing", "/", "", landingTemplateFiles)
	data.Data = getLandingPageData(sess)
	savePageSession(r, sess)

	if handleTemplateError(w, r, "landing.go", "Landing", "", landingTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getLandingPageData(sess *session.PageSession) *models.LandingPageData {
	pageData := &models.LandingPageData{
		SessionId:          sess.Id,
		GetStartedLink:     utils.Config.Frontend.GetStartedLink,
		VerificationAction: utils.Config.Verification.Action,
		VerificationSignal: sess.ClaimAddress,
		Verified:           sess.Verification.Verified,
		VerifyError:        sess.Verification.ErrorMessage,
		ClaimAddress:       sess.ClaimAddress,
		ClaimError:         sess.Result.ErrorMessage,
		ShowTransfer:       sess.ShowTransfer,
		Transfer:           getTransferPageData(sess, transferViewLanding),
	}

	if widget, ok := services.GlobalGasService.Verifier().(verificationWidget); ok {
		pageData.VerificationAppId = widget.AppId()
		pageData.VerificationAction = widget.Action()
	}

	return pageData
}

func renderSuccess(w http.ResponseWriter, r *http.Request, sess *session.PageSession) {
	var successTemplateFiles = append(layoutTemplateFiles,
		"success/success.html",
	)

	var successTemplate = templates.GetTemplate(successTemplateFiles...)

	w.Header().Set("Content-Type", "text/html")
	data := InitPageData(w, r, "success", "/", "Success", successTemplateFiles)
	data.Data = &models.SuccessPageData{
		TransactionHash: sess.Result.TransactionHash,
		BlockscoutLink:  utils.FormatExplorerTxLink(utils.Config.Explorers.BlockscoutTxUrl, sess.Result.TransactionHash),
		RoutescanLink:   utils.FormatExplorerTxLink(utils.Config.Explorers.RoutescanTxUrl, sess.Result.TransactionHash),
		DonationTarget:  utils.Config.Frontend.DonationTarget,
	}

	logrus.WithFields(logrus.Fields{
		"session": sess.Id,
		"tx":      sess.Result.TransactionHash,
	}).Info("transfer submitted")

	// a finished page session is not resumed
	if err := services.GlobalGasService.Sessions().Delete(r.Context(), sess.Id); err != nil {
		logrus.WithError(err).WithField("session", sess.Id).Warn("error deleting page session")
	}

	if handleTemplateError(w, r, "landing.go", "Success", "", successTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}
