package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/services"
	"github.com/ethpandaops/getgas/session"
)

// loadPageSession resolves the page session posted with a form. Unknown or expired ids start a
// fresh session, like a reload of the page would.
func loadPageSession(r *http.Request, id string) (*session.PageSession, error) {
	store := services.GlobalGasService.Sessions()
	sess, err := store.Load(r.Context(), id)
	if errors.Is(err, services.ErrSessionNotFound) {
		logrus.WithField("session", id).Debugf("page session not found, starting a new one")
		return store.Create(r.Context())
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// savePageSession stores the session after the page has been rendered. The one-shot wallet
// requests have been delivered by then.
func savePageSession(r *http.Request, sess *session.PageSession) {
	sess.ConnectRequested = false
	sess.DisconnectRequested = false
	if err := services.GlobalGasService.Sessions().Save(r.Context(), sess); err != nil {
		logrus.WithError(err).WithField("session", sess.Id).Error("error saving page session")
	}
}
