package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/getgas/cache"
	"github.com/ethpandaops/getgas/session"
)

func newTestSessionStore() *SessionStore {
	return NewSessionStore(cache.NewTieredCacheWithRemote(4, nil), time.Hour)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSessionStore()

	sess, err := store.Create(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(sess.Id)
	require.NoError(t, err)

	sess.Wallet.ApplyWallets([]session.LinkedWallet{{Address: testAddress, WalletClientType: "metamask"}})
	sess.Balances = session.ChainBalances{ChainA: "0.1", ChainB: "2"}
	sess.Transfer.SetFromChain(session.ChainB)
	sess.Transfer.SetAmount("0.05")
	sess.Transfer.SetDestinationAddress(testAddress)
	sess.Verification.OnSuccess()
	sess.ShowTransfer = true
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Load(ctx, sess.Id)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
	assert.Equal(t, session.ChainB, loaded.Transfer.FromChain)
	assert.Equal(t, session.ChainA, loaded.Transfer.ToChain)
}

func TestSessionStoreNotFound(t *testing.T) {
	store := newTestSessionStore()

	tests := []struct {
		name string
		id   string
	}{
		{"empty id", ""},
		{"malformed id", "../../etc/passwd"},
		{"unknown id", uuid.NewString()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Load(context.Background(), tt.id)
			if !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("Load(%q) error = %v, want %v", tt.id, err, ErrSessionNotFound)
			}
		})
	}
}

func TestSessionStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestSessionStore()

	sess, err := store.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, sess.Id))

	_, err = store.Load(ctx, sess.Id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
