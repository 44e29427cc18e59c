package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethpandaops/getgas/utils"
)

const invalidAddressMessage = "Please enter a valid EVM address"

var ErrNotVerified = errors.New("identity not verified")

// SubmitOutcome tells the caller what a transfer submit did.
type SubmitOutcome uint8

const (
	SubmitNotEligible SubmitOutcome = iota
	SubmitConnectRequested
	SubmitTransferred
	SubmitFailed
)

// PageSession is the state of one page load. It is created on every full page load and
// lives in the session store until it expires.
type PageSession struct {
	Id           string           `json:"id"`
	Wallet       WalletSession    `json:"wallet"`
	Balances     ChainBalances    `json:"balances"`
	Transfer     TransferForm     `json:"transfer"`
	Verification VerificationGate `json:"verification"`
	ClaimAddress string           `json:"claimAddress"`
	ShowTransfer bool             `json:"showTransfer"`

	// one-shot requests for the browser side of the wallet provider
	ConnectRequested    bool `json:"connectRequested"`
	DisconnectRequested bool `json:"disconnectRequested"`

	Result SubmissionResult `json:"result"`
}

func New(id string) *PageSession {
	return &PageSession{
		Id:       id,
		Balances: ZeroBalances(),
		Transfer: NewTransferForm(),
	}
}

// ApplyWallets feeds a reported account list into the wallet session. Connecting (or switching
// accounts) makes the account the default destination and fetches balances, disconnecting
// clears destination and balances.
func (s *PageSession) ApplyWallets(ctx context.Context, wallets []LinkedWallet, fetcher BalanceFetcher) WalletTransition {
	transition := s.Wallet.ApplyWallets(wallets)
	switch {
	case transition.NeedsBalanceFetch():
		s.Transfer.SetDestinationAddress(s.Wallet.Address)
		s.Balances = fetcher.FetchBalances(ctx, s.Wallet.Address)
	case transition == WalletDisconnected:
		s.Transfer.SetDestinationAddress("")
		s.Balances = ZeroBalances()
	}
	return transition
}

// SignOut disconnects the wallet provider. The local session is only cleared if that succeeded.
func (s *PageSession) SignOut(ctx context.Context, wallet WalletProvider) error {
	if err := wallet.Disconnect(ctx); err != nil {
		return fmt.Errorf("wallet disconnect failed: %w", err)
	}
	s.Wallet.Reset()
	s.Balances = ZeroBalances()
	s.Transfer.SetDestinationAddress("")
	return nil
}

// Eligibility of the transfer form for the current wallet state.
func (s *PageSession) Eligibility() Eligibility {
	return s.Transfer.ComputeEligibility(s.Wallet.Connected)
}

// SubmitTransfer connects the wallet when disconnected, otherwise hands an eligible draft to
// the submitter. A failed submission leaves the form unchanged.
func (s *PageSession) SubmitTransfer(ctx context.Context, wallet WalletProvider, submitter Submitter) (SubmitOutcome, error) {
	if !s.Wallet.Connected {
		if err := wallet.Connect(ctx); err != nil {
			return SubmitFailed, fmt.Errorf("wallet connect failed: %w", err)
		}
		return SubmitConnectRequested, nil
	}

	if !s.Eligibility().CanSubmit {
		return SubmitNotEligible, nil
	}

	result, err := submitter.Submit(ctx, &TransferRequest{
		FromChain:   s.Transfer.FromChain,
		ToChain:     s.Transfer.ToChain,
		Amount:      s.Transfer.Amount,
		Sender:      s.Wallet.Address,
		Destination: s.Transfer.DestinationAddress,
	})
	if err != nil {
		return SubmitFailed, fmt.Errorf("transfer submission failed: %w", err)
	}
	if result == nil || !result.Success {
		return SubmitFailed, nil
	}

	s.Result = *result
	return SubmitTransferred, nil
}

// SubmitClaim handles the address form shown after a successful verification.
func (s *PageSession) SubmitClaim(ctx context.Context, address string, submitter Submitter) error {
	s.ClaimAddress = address
	s.Result = SubmissionResult{}

	if !s.Verification.Verified {
		return ErrNotVerified
	}
	if !utils.IsValidAddress(address) {
		s.Result.ErrorMessage = invalidAddressMessage
		return nil
	}

	result, err := submitter.Submit(ctx, &TransferRequest{
		FromChain:   s.Transfer.FromChain,
		ToChain:     s.Transfer.ToChain,
		Destination: address,
	})
	if err != nil {
		return fmt.Errorf("claim submission failed: %w", err)
	}
	if result != nil {
		s.Result = *result
	}
	return nil
}
